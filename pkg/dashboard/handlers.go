package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"personalityPairing/pkg/aggregate"
	"personalityPairing/pkg/chart"
	"personalityPairing/pkg/help"
	"personalityPairing/pkg/msg"
	"personalityPairing/pkg/profile"
	"personalityPairing/pkg/recommend"
)

const (
	startCommand  = "/start"
	typesCommand  = "/types"
	typeCommand   = "/type"
	statsCommand  = "/stats"
	topCountries  = 5
	usageTypeHelp = typeCommand + " CODE: songs and wines for a personality type, e.g. " + typeCommand + " INFP"
)

type Recommender interface {
	Recommend(ctx context.Context, code string) (*recommend.Recommendation, error)
}

type Summarizer interface {
	MusicSummary(ctx context.Context) (*aggregate.Summary, error)
	WineSummary(ctx context.Context, variety string) (*aggregate.Summary, error)
}

type StartHandler struct{}

func (sh *StartHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	return strings.HasPrefix(req.Message, startCommand), nil
}

func (sh *StartHandler) Handle(_ context.Context, _ *msg.Request) (*msg.Response, error) {
	return &msg.Response{
		Message: "Pick your personality type to get songs and wines that suit it.\n\n" + FormatProfiles(profile.All()),
		Type:    msg.Success,
		Format:  msg.OutputFormatMarkdown1,
		Options: profile.Codes(),
	}, nil
}

type ProfilesHandler struct{}

func (ph *ProfilesHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	return msg.MatchCommand(req.Message, []string{typesCommand}), nil
}

func (ph *ProfilesHandler) Handle(_ context.Context, _ *msg.Request) (*msg.Response, error) {
	return &msg.Response{
		Message: FormatProfiles(profile.All()),
		Type:    msg.Success,
		Format:  msg.OutputFormatMarkdown1,
		Options: profile.Codes(),
	}, nil
}

func (ph *ProfilesHandler) GetHelp(_ context.Context, _ *msg.Request) help.Result {
	return help.Result{
		Text:             typesCommand + ": list the personality types",
		PredefinedOption: typesCommand,
	}
}

// RecommendHandler answers "/type CODE" as well as a bare known code.
type RecommendHandler struct {
	rec Recommender
}

func NewRecommendHandler(rec Recommender) *RecommendHandler {
	return &RecommendHandler{rec: rec}
}

func (rh *RecommendHandler) code(message string) (string, bool) {
	if msg.IsCommand(message) {
		fields := strings.Fields(message)
		if !msg.MatchCommand(fields[0], []string{typeCommand}) {
			return "", false
		}
		args := msg.CommandArgs(message)
		if len(args) == 0 {
			return "", true
		}
		return args[0], true
	}

	p, ok := profile.Lookup(message)
	return p.Code, ok
}

func (rh *RecommendHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	_, ok := rh.code(req.Message)
	return ok, nil
}

func (rh *RecommendHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	code, _ := rh.code(req.Message)
	if code == "" {
		return &msg.Response{Message: "Usage: " + usageTypeHelp, Type: msg.Error}, nil
	}

	rec, err := rh.rec.Recommend(ctx, code)
	if errors.Is(err, recommend.ErrUnknownProfile) {
		return &msg.Response{
			Message: fmt.Sprintf("Unknown personality type %q, pick one of %s", code, strings.Join(profile.Codes(), ", ")),
			Type:    msg.Error,
			Options: profile.Codes(),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &msg.Response{
		Message: FormatRecommendation(rec),
		Type:    msg.Success,
		Format:  msg.OutputFormatMarkdown1,
	}, nil
}

func (rh *RecommendHandler) GetHelp(_ context.Context, _ *msg.Request) help.Result {
	return help.Result{Text: usageTypeHelp}
}

// StatsHandler is the text rendition of the two charts.
type StatsHandler struct {
	summaries Summarizer
}

func NewStatsHandler(s Summarizer) *StatsHandler {
	return &StatsHandler{summaries: s}
}

func (sh *StatsHandler) CanHandle(_ context.Context, req *msg.Request) (bool, error) {
	fields := strings.Fields(req.Message)
	return len(fields) > 0 && msg.MatchCommand(fields[0], []string{statsCommand}), nil
}

func (sh *StatsHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	log := logrus.WithContext(ctx)
	sb := new(strings.Builder)

	music, err := sh.summaries.MusicSummary(ctx)
	switch {
	case errors.Is(err, chart.ErrNoGroupColumn):
		log.Debug("songs carry no mbti column, skipping music averages")
	case err != nil:
		return nil, err
	default:
		fmt.Fprintf(sb, "Average song profile per type:\n%s\n\n", FormatSummary(music))
	}

	variety := ""
	title := "Best rated countries:"
	if args := msg.CommandArgs(req.Message); len(args) > 0 {
		p, ok := profile.Lookup(args[0])
		if !ok {
			return &msg.Response{Message: fmt.Sprintf("Unknown personality type %q", args[0]), Type: msg.Error}, nil
		}
		variety = p.Wine
		title = fmt.Sprintf("Best rated countries for %s:", p.Wine)
	}

	wines, err := sh.summaries.WineSummary(ctx, variety)
	if err != nil {
		return nil, err
	}

	pointsCol := ""
	if len(wines.Columns) > 0 {
		pointsCol = wines.Columns[0]
	}
	fmt.Fprintf(sb, "%s\n%s", title, formatRows(wines.Columns, TopGroups(wines, pointsCol, topCountries)))

	return &msg.Response{Message: sb.String(), Type: msg.Success}, nil
}

func (sh *StatsHandler) GetHelp(_ context.Context, _ *msg.Request) help.Result {
	return help.Result{
		Text:             statsCommand + " [CODE]: average song profile per type and best rated wine countries",
		PredefinedOption: statsCommand,
	}
}
