package telegram

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"personalityPairing/pkg/errs"
	applog "personalityPairing/pkg/logging"
	"personalityPairing/pkg/msg"
)

const buttonsPerRow = 4

type Bot struct {
	conf       *Config
	baseBot    *telebot.Bot
	msgHandler *msg.Router
}

func NewBot(c *Config, r *msg.Router) (*Bot, error) {
	validationErr := c.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	botApi, err := telebot.NewBot(telebot.Settings{
		Token: c.APIToken,
		OnError: func(err error, c telebot.Context) {
			errs.Handle(err, false)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	return &Bot{conf: c, baseBot: botApi, msgHandler: r}, nil
}

func (b *Bot) botMsgToRequest(telegramMsg telebot.Context) *msg.Request {
	sender := new(msg.Sender)
	telegramSender := telegramMsg.Sender()
	if telegramSender != nil {
		id := telegramSender.Username
		if id == "" {
			id = fmt.Sprint(telegramSender.ID)
		}

		sender.ID = id
		sender.LastName = telegramSender.LastName
		sender.FirstName = telegramSender.FirstName
	}

	var conversationID int64
	chat := telegramMsg.Chat()
	if chat != nil {
		conversationID = chat.ID
	}

	return &msg.Request{
		Platform: "telegram",
		ID:       fmt.Sprint(telegramMsg.Message().ID),
		Sender:   sender,
		Message:  telegramMsg.Text(),
		Meta: map[string]interface{}{
			"conversation_id": conversationID,
		},
	}
}

func parseMode(f msg.OutputFormat) telebot.ParseMode {
	switch f {
	case msg.OutputFormatMarkdown1:
		return telebot.ModeMarkdown
	case msg.OutputFormatMarkdown2:
		return telebot.ModeMarkdownV2
	case msg.OutputFormatHTML:
		return telebot.ModeHTML
	default:
		return telebot.ModeDefault
	}
}

// replyKeyboard lays the suggested options out as keyboard buttons, nil when there are none.
func replyKeyboard(options []string) *telebot.ReplyMarkup {
	if len(options) == 0 {
		return nil
	}

	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}

	rows := make([]telebot.Row, 0, len(options)/buttonsPerRow+1)
	var row telebot.Row
	for _, o := range options {
		row = append(row, markup.Text(o))
		if len(row) == buttonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	markup.Reply(rows...)

	return markup
}

func (b *Bot) processResponseMessage(
	ctx context.Context,
	telegramMsg telebot.Context,
	resp *msg.Response,
) error {
	log := logging.WithContext(ctx)

	if resp == nil || resp.Message == "" {
		log.Info("response message is empty, will send nothing to the sender")
		return nil
	}

	senderOpts := &telebot.SendOptions{
		ParseMode:   parseMode(resp.Format),
		ReplyMarkup: replyKeyboard(resp.Options),
	}

	log.Debugf("telegram message:\n%q", resp.Message)

	text := resp.Message
	if resp.Type == msg.Error {
		text = `❗` + resp.Message + `❗`
	}

	_, err := b.baseBot.Send(telegramMsg.Sender(), text, senderOpts)
	if err != nil {
		return errors.Wrapf(err, "failed to send message:\n%s", resp.Message)
	}

	return nil
}

func (b *Bot) handle(ctx context.Context, c telebot.Context) error {
	log := logging.WithContext(ctx)

	log.Debugf("got telegram message: %q", c.Text())

	req := b.botMsgToRequest(c)

	resp, err := b.msgHandler.Route(ctx, req)
	if errors.Is(err, msg.ErrNoHandler) {
		resp = &msg.Response{Message: "Send /help to see what I can do", Type: msg.Error}
		err = nil
	}
	if err != nil {
		_, sendErr := b.baseBot.Send(c.Sender(), "Unexpected error", &telebot.SendOptions{})
		if sendErr != nil {
			log.Errorf("failed to send error message to the sender: %v", sendErr)
		}

		return err
	}

	return b.processResponseMessage(ctx, c, resp)
}

func (b *Bot) Start() {
	b.baseBot.Handle(telebot.OnText, func(c telebot.Context) error {
		ctx, cancel := context.WithCancel(applog.WithTrackingId(context.Background()))
		defer cancel()

		return b.handle(ctx, c)
	})

	b.baseBot.Start()
}

func (b *Bot) Stop() {
	logging.Info("will stop telegram bot")
	b.baseBot.Stop()
	logging.Info("stopped telegram bot")
}
