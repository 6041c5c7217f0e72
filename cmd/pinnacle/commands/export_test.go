package commands

// SetArgs sets the arguments of the root command.
func (a *App) SetArgs(args ...string) {
	a.cmd.SetArgs(args)
}
