package git

// Client binds the patch-series git operations to a Runner. Production code
// uses NewClient with a CommandRunner; tests inject a fake Runner that
// records argv and replays canned output.
type Client struct {
	runner Runner
}

// NewClient creates a Client that runs real git commands in workingDir.
// An empty workingDir means the process working directory.
func NewClient(workingDir string) *Client {
	return &Client{runner: NewCommandRunner(workingDir)}
}

// NewClientWithRunner creates a Client on top of an existing Runner.
func NewClientWithRunner(runner Runner) *Client {
	return &Client{runner: runner}
}
