package msg

type Sender struct {
	ID        string
	FirstName string
	LastName  string
}

func (s *Sender) GetID() string {
	if s == nil {
		return ""
	}

	return s.ID
}

type Request struct {
	Platform string
	ID       string
	Sender   *Sender
	Message  string
	Meta     map[string]interface{}
}

type Type uint

const (
	Undefined Type = iota
	Success
	Error
	Prompt
)

type OutputFormat uint

const (
	OutputFormatUndefined OutputFormat = iota
	OutputFormatMarkdown1
	OutputFormatMarkdown2
	OutputFormatHTML
)

type Response struct {
	Message string
	Type    Type
	Format  OutputFormat
	// Options are suggested follow-up messages a front-end may offer as buttons.
	Options []string
}
