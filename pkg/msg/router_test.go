package msg

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixHandler struct {
	prefix string
	reply  string
}

func (h prefixHandler) CanHandle(_ context.Context, req *Request) (bool, error) {
	return strings.HasPrefix(req.Message, h.prefix), nil
}

func (h prefixHandler) Handle(_ context.Context, _ *Request) (*Response, error) {
	return &Response{Message: h.reply, Type: Success}, nil
}

func TestRouterPicksFirstMatchingHandler(t *testing.T) {
	r := &Router{Handlers: []Handler{
		prefixHandler{prefix: "/types", reply: "list"},
		prefixHandler{prefix: "/type", reply: "one"},
	}}

	resp, err := r.Route(context.Background(), &Request{Message: "/type INFP"})
	require.NoError(t, err)
	assert.Equal(t, "one", resp.Message)

	resp, err = r.Route(context.Background(), &Request{Message: "/types"})
	require.NoError(t, err)
	assert.Equal(t, "list", resp.Message)

	_, err = r.Route(context.Background(), &Request{Message: "hello"})
	assert.ErrorIs(t, err, ErrNoHandler)
}

func TestRouterLogsRequestOrigin(t *testing.T) {
	logger := logrus.StandardLogger()
	prevLevel := logger.GetLevel()
	logger.SetLevel(logrus.DebugLevel)
	prevHooks := logger.ReplaceHooks(make(logrus.LevelHooks))
	hook := test.NewLocal(logger)
	defer func() {
		logger.ReplaceHooks(prevHooks)
		logger.SetLevel(prevLevel)
	}()

	r := &Router{Handlers: []Handler{prefixHandler{prefix: "/type", reply: "one"}}}
	req := &Request{
		Platform: "telegram",
		ID:       "42",
		Sender:   &Sender{ID: "7"},
		Message:  "/type INFP",
		Meta:     map[string]interface{}{"conversation_id": int64(1001)},
	}

	_, err := r.Route(context.Background(), req)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "telegram", entry.Data["platform"])
	assert.Equal(t, "42", entry.Data["request_id"])
	assert.Equal(t, "7", entry.Data["sender"])
	assert.Equal(t, int64(1001), entry.Data["conversation_id"])

	_, err = r.Route(context.Background(), &Request{Message: "hello"})
	assert.ErrorIs(t, err, ErrNoHandler)
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "", entry.Data["sender"])
	assert.NotContains(t, entry.Data, "platform")
}

func TestMatchCommand(t *testing.T) {
	assert.True(t, MatchCommand("/HELP", []string{"help"}))
	assert.True(t, MatchCommand("/help", []string{"/help"}))
	assert.False(t, MatchCommand("/helpme", []string{"help"}))
	assert.True(t, IsCommand("/start"))
	assert.False(t, IsCommand("INFP"))
}

func TestCommandArgs(t *testing.T) {
	assert.Equal(t, []string{"INFP"}, CommandArgs("/type  INFP "))
	assert.Nil(t, CommandArgs("/type"))
}
