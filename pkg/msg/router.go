package msg

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrNoHandler = errors.New("no matching handler found for the message")

// Router passes a request to the first handler that accepts it.
type Router struct {
	Handlers []Handler
}

// logFields describes where a request came from, meta values such as conversation_id included.
func (req *Request) logFields() logrus.Fields {
	fields := logrus.Fields{
		"sender": req.Sender.GetID(),
	}
	if req.Platform != "" {
		fields["platform"] = req.Platform
	}
	if req.ID != "" {
		fields["request_id"] = req.ID
	}
	for k, v := range req.Meta {
		fields[k] = v
	}

	return fields
}

func (r *Router) Route(ctx context.Context, req *Request) (*Response, error) {
	log := logrus.WithContext(ctx).WithFields(req.logFields())

	for _, h := range r.Handlers {
		canHandle, err := h.CanHandle(ctx, req)
		if err != nil {
			return nil, err
		}
		if !canHandle {
			continue
		}

		log.Debugf("message %q handled by %T", req.Message, h)

		return h.Handle(ctx, req)
	}

	log.Debugf("no handler for message %q", req.Message)

	return nil, ErrNoHandler
}
