package handlers

import (
	"fmt"
	"net/http"

	"github.com/trypinnacle/pinnacle-go/internal/constants"
)

// Version writes the version of the service.
func Version(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"version":%q}`, constants.Version)
}
