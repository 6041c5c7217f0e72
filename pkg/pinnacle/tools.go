package pinnacle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/field"
)

// ToolsService shortens links, manages contact cards and hosts media files.
type ToolsService struct {
	c *Client
}

func (s *ToolsService) ShortenURL(ctx context.Context, params ShortenURLParams) (ShortenedURL, error) {
	return call[ShortenedURL](ctx, s.c, http.MethodPost, "tools/url", nil, params)
}

// GetURL returns a shortened link with its visits.
func (s *ToolsService) GetURL(ctx context.Context, id string) (ShortenedURLClicks, error) {
	return call[ShortenedURLClicks](ctx, s.c, http.MethodGet, "tools/url/"+pathEscape(id), nil, nil)
}

// UpdateURL changes the destination or the expiry of a shortened link.
func (s *ToolsService) UpdateURL(ctx context.Context, id string, params ShortenURLParams) (ShortenedURL, error) {
	return call[ShortenedURL](ctx, s.c, http.MethodPut, "tools/url/"+pathEscape(id), nil, params)
}

func (s *ToolsService) GetContactCard(ctx context.Context, params GetContactCardParams) (VCard, error) {
	return call[VCard](ctx, s.c, http.MethodPost, "tools/contact-card", nil, params)
}

// UpsertContactCard creates a contact card, or updates it when card.ID is set.
func (s *ToolsService) UpsertContactCard(ctx context.Context, card VCard) (VCard, error) {
	return call[VCard](ctx, s.c, http.MethodPost, "tools/contact-card/upsert", nil, card)
}

// UploadFile returns a presigned URL to PUT a file to, and the URL it can be downloaded
// from once uploaded.
func (s *ToolsService) UploadFile(ctx context.Context, params UploadFileParams) (UploadResults, error) {
	return call[UploadResults](ctx, s.c, http.MethodPost, "tools/files/upload", nil, params)
}

// RefreshFiles renews the download URLs of uploaded files.
func (s *ToolsService) RefreshFiles(ctx context.Context, params RefreshFilesParams) (RefreshedFiles, error) {
	return call[RefreshedFiles](ctx, s.c, http.MethodPost, "tools/files/refresh", nil, params)
}

// UploadFromPath uploads the local file p and returns its download URL.
//
// The content type is detected from the file extension. name overrides the base name of p
// when not empty. opts is sent as the upload options when present.
func (s *ToolsService) UploadFromPath(ctx context.Context, p, name string, opts field.Field[UploadFileOptions]) (string, error) {
	fi, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: file %s", ErrNotFound, p)
	} else if err != nil {
		return "", fmt.Errorf("could not stat %s: %v", p, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory, not a file", ErrBadRequest, p)
	}

	if name == "" {
		name = filepath.Base(p)
	}
	contentType := DetectContentType(p)

	res, err := s.UploadFile(ctx, UploadFileParams{
		ContentType: contentType,
		Size:        fi.Size(),
		Name:        field.Of(name),
		Options:     opts,
	})
	if err != nil {
		return "", err
	}

	if res.UploadURL != "" {
		if err := s.put(ctx, res.UploadURL, p, contentType, fi.Size()); err != nil {
			return "", err
		}
	}
	return res.DownloadURL.Value(), nil
}

// put sends the content of the file p to a presigned URL.
func (s *ToolsService) put(ctx context.Context, u, p, contentType string, size int64) error {
	f, err := os.Open(p)
	if err != nil {
		return fmt.Errorf("could not open %s: %v", p, err)
	}
	defer f.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, f)
	if err != nil {
		return fmt.Errorf("failed to create upload request: %v", err)
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	s.c.log.Debug("Uploading file", "file", p, "size", size, "contentType", contentType)
	resp, err := s.c.conf.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Method: http.MethodPut, Path: "upload URL"}
	}
	return nil
}

const octetStream = "application/octet-stream"

var mimeTypes = map[string]string{
	".mp3":   "audio/mpeg",
	".mp4":   "video/mp4",
	".ogg":   "audio/ogg",
	".aac":   "audio/aac",
	".webm":  "video/webm",
	".wav":   "audio/wav",
	".3gp":   "video/3gpp",
	".3gpp":  "video/3gpp",
	".amr":   "audio/amr",
	".mpeg":  "video/mpeg",
	".mpg":   "video/mpeg",
	".mov":   "video/quicktime",
	".m4v":   "video/x-m4v",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".png":   "image/png",
	".gif":   "image/gif",
	".bmp":   "image/bmp",
	".tiff":  "image/tiff",
	".tif":   "image/tiff",
	".webp":  "image/webp",
	".pdf":   "application/pdf",
	".csv":   "text/csv",
	".rtf":   "application/rtf",
	".vcf":   "text/vcard",
	".vcard": "text/vcard",
	".ics":   "text/calendar",
}

// DetectContentType returns the content type of the file p from its extension, or
// application/octet-stream for extensions with no known media type.
func DetectContentType(p string) string {
	t, ok := mimeTypes[strings.ToLower(filepath.Ext(p))]
	if !ok {
		return octetStream
	}
	return t
}
