package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"home-catering/config"
	"home-catering/lang"
	"home-catering/models"
	"home-catering/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// chatState is one chat's ordering session plus what the bot is waiting for.
type chatState struct {
	session  *services.Session
	awaiting string // form field the next text message fills, "" if none
	screenID int    // message id of the last rendered screen
}

type Bot struct {
	api        *tgbotapi.BotAPI
	messageBot *tgbotapi.BotAPI // bot for sending orders to the business chat (MESSAGE_TOKEN)
	cfg        *config.Config
	log        *zap.Logger

	catalog *services.Catalog
	store   services.KVStore

	chats map[int64]*chatState
	now   func() time.Time
}

func New(cfg *config.Config, catalog *services.Catalog, store services.KVStore, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	b := newBot(cfg, catalog, store, log)
	b.api = api
	if cfg.Telegram.MessageToken != "" {
		messageBot, err := tgbotapi.NewBotAPI(cfg.Telegram.MessageToken)
		if err != nil {
			log.Warn("failed to initialize message bot", zap.Error(err))
		} else {
			b.messageBot = messageBot
		}
	}
	return b, nil
}

func newBot(cfg *config.Config, catalog *services.Catalog, store services.KVStore, log *zap.Logger) *Bot {
	return &Bot{
		cfg:     cfg,
		log:     log,
		catalog: catalog,
		store:   store,
		chats:   make(map[int64]*chatState),
		now:     time.Now,
	}
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: lang.T(b.cfg.Business.Lang, "home_title")},
		tgbotapi.BotCommand{Command: "menu", Description: lang.T(b.cfg.Business.Lang, "to_menu")},
		tgbotapi.BotCommand{Command: "cart", Description: lang.T(b.cfg.Business.Lang, "cart_title")},
	)
	_, err := b.api.Request(cfg)
	return err
}

// Start polls for updates and handles them one at a time until ctx is done.
// Sessions and the catalog are only ever touched from this loop.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.setBotCommands(); err != nil {
		b.log.Warn("set bot commands", zap.Error(err))
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)
	b.log.Info("bot started", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return errors.New("telegram update channel closed")
			}
			switch {
			case update.CallbackQuery != nil:
				b.handleCallback(ctx, update.CallbackQuery)
			case update.Message != nil:
				b.handleMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) state(chatID int64) *chatState {
	st, ok := b.chats[chatID]
	if !ok {
		st = &chatState{session: services.NewSession(b.catalog, services.DayOf(b.now()))}
		b.chats[chatID] = st
	}
	return st
}

func (b *Bot) canAdmin(userID int64) bool {
	return b.cfg.Telegram.AdminID == 0 || b.cfg.Telegram.AdminID == userID
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	st := b.state(chatID)

	switch {
	case text == "/start":
		st = &chatState{session: services.NewSession(b.catalog, services.DayOf(b.now()))}
		b.chats[chatID] = st
	case text == "/menu":
		st.awaiting = ""
		st.session.Navigate(services.ViewMenu)
	case text == "/cart":
		st.awaiting = ""
		st.session.Navigate(services.ViewCart)
	case st.awaiting != "" && text != "":
		if b.applyInput(st, msg.From.ID, text) {
			b.persistCatalog(ctx)
		}
	default:
		return
	}
	st.screenID = 0
	b.render(chatID, msg.From.ID, st)
}

// actionResult is what a callback asks the transport layer to do.
type actionResult struct {
	prompt         string // lang key of a question to ask; the screen is not redrawn
	toast          string
	handoff        *services.OrderHandoff
	catalogChanged bool
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	st := b.state(chatID)
	st.screenID = cq.Message.MessageID

	res := b.handleAction(st, cq.From.ID, cq.Data)
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, res.toast)); err != nil {
		b.log.Debug("answer callback", zap.Error(err))
	}
	if res.catalogChanged {
		b.persistCatalog(ctx)
	}
	if res.handoff != nil {
		b.notifyBusiness(*res.handoff)
	}
	if res.prompt != "" {
		msg := tgbotapi.NewMessage(chatID, lang.T(b.cfg.Business.Lang, res.prompt))
		msg.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true}
		if _, err := b.api.Send(msg); err != nil {
			b.log.Warn("send prompt", zap.Int64("chat_id", chatID), zap.Error(err))
		}
		return
	}
	b.render(chatID, cq.From.ID, st)
}

// handleAction applies one button press to the chat's session.
func (b *Bot) handleAction(st *chatState, userID int64, data string) actionResult {
	s := st.session
	l := b.cfg.Business.Lang
	var res actionResult

	switch {
	case strings.HasPrefix(data, services.CbNav):
		s.Navigate(services.View(strings.TrimPrefix(data, services.CbNav)))
	case strings.HasPrefix(data, services.CbDay):
		s.SelectDay(models.Day(strings.TrimPrefix(data, services.CbDay)))
	case strings.HasPrefix(data, services.CbCategory):
		s.SelectCategory(models.Category(strings.TrimPrefix(data, services.CbCategory)))
	case strings.HasPrefix(data, services.CbAdd):
		if s.AddToCart(strings.TrimPrefix(data, services.CbAdd)) {
			res.toast = lang.T(l, "cart_button", s.Cart().ItemCount())
		}
	case strings.HasPrefix(data, services.CbInc):
		s.UpdateQuantity(strings.TrimPrefix(data, services.CbInc), 1)
	case strings.HasPrefix(data, services.CbDec):
		s.UpdateQuantity(strings.TrimPrefix(data, services.CbDec), -1)
	case strings.HasPrefix(data, services.CbRemove):
		s.RemoveFromCart(strings.TrimPrefix(data, services.CbRemove))
	case strings.HasPrefix(data, services.CbMethod):
		s.SetMethod(models.FulfillmentMethod(strings.TrimPrefix(data, services.CbMethod)))
	case strings.HasPrefix(data, services.CbField):
		st.awaiting = strings.TrimPrefix(data, services.CbField)
		res.prompt = promptFor(st.awaiting)
	case data == services.CbSend:
		if h, ok := s.SubmitOrder(l, b.cfg.Business.Phone); ok {
			res.handoff = &h
		} else {
			res.toast = lang.T(l, "fill_required")
		}
	case data == services.CbAdmin:
		if b.canAdmin(userID) {
			st.awaiting = ""
			s.ToggleAdmin()
		}
	case !s.IsAdmin() || !b.canAdmin(userID):
		// everything below is the catalog editor
	case strings.HasPrefix(data, services.CbAdmToggle):
		res.catalogChanged = s.ToggleAvailability(strings.TrimPrefix(data, services.CbAdmToggle))
	case strings.HasPrefix(data, services.CbAdmEdit):
		s.StartEdit(strings.TrimPrefix(data, services.CbAdmEdit))
	case data == services.CbAdmShare:
		s.MarkLinkCopied(b.now())
		res.toast = lang.T(l, "admin_copied")
	case strings.HasPrefix(data, services.CbAdmAdd):
		st.awaiting = data
		res.prompt = "prompt_add_item"
	case strings.HasPrefix(data, services.CbEditField):
		st.awaiting = strings.TrimPrefix(data, services.CbEditField)
		res.prompt = promptFor(st.awaiting)
	case data == services.CbEditSave:
		if s.SaveEdit() {
			res.catalogChanged = true
			res.toast = lang.T(l, "saved")
		}
	case data == services.CbEditCancel:
		s.CancelEdit()
	}
	return res
}

func promptFor(field string) string {
	switch field {
	case services.FieldName:
		return "prompt_name"
	case services.FieldPhone:
		return "prompt_phone"
	case services.FieldAddress:
		return "prompt_address"
	case services.FieldNotes:
		return "prompt_notes"
	case services.FieldItemName:
		return "prompt_new_name"
	case services.FieldItemPrice:
		return "prompt_new_price"
	case services.FieldItemDesc:
		return "prompt_new_desc"
	}
	return ""
}

// applyInput stores a typed answer in the field the chat was asked for.
// Answers to editor questions only count from a user allowed to edit.
// It reports whether the catalog changed.
func (b *Bot) applyInput(st *chatState, userID int64, text string) bool {
	s := st.session
	field := st.awaiting
	if isEditorField(field) && (!s.IsAdmin() || !b.canAdmin(userID)) {
		return false
	}
	st.awaiting = ""

	switch field {
	case services.FieldName:
		s.SetCustomerName(text)
	case services.FieldPhone:
		s.SetPhone(text)
	case services.FieldAddress:
		s.SetAddress(text)
	case services.FieldNotes:
		s.SetNotes(text)
	case services.FieldItemName:
		s.EditName(text)
	case services.FieldItemPrice:
		s.EditPrice(text)
	case services.FieldItemDesc:
		s.EditDescription(text)
	default:
		if !strings.HasPrefix(field, services.CbAdmAdd) {
			return false
		}
		name, price, ok := parseNewItem(text)
		if !ok {
			return false
		}
		cat := models.Category(strings.TrimPrefix(field, services.CbAdmAdd))
		item, err := s.Catalog().AddItem(name, price, cat)
		if err != nil {
			b.log.Debug("add menu item", zap.Error(err))
			return false
		}
		b.log.Info("menu item added", zap.String("item_id", item.ID), zap.String("name", item.Name))
		return true
	}
	return false
}

func isEditorField(field string) bool {
	switch field {
	case services.FieldItemName, services.FieldItemPrice, services.FieldItemDesc:
		return true
	}
	return strings.HasPrefix(field, services.CbAdmAdd)
}

// parseNewItem reads "name;price".
func parseNewItem(text string) (string, int64, bool) {
	i := strings.LastIndex(text, ";")
	if i < 0 {
		return "", 0, false
	}
	name := strings.TrimSpace(text[:i])
	if name == "" {
		return "", 0, false
	}
	return name, services.ParsePrice(text[i+1:]), true
}

func (b *Bot) renderOptions() services.RenderOptions {
	opts := services.RenderOptions{
		Lang:          b.cfg.Business.Lang,
		BusinessPhone: b.cfg.Business.Phone,
		Now:           b.now(),
	}
	if b.api != nil && b.api.Self.UserName != "" {
		opts.ShareLink = "https://t.me/" + b.api.Self.UserName
	}
	return opts
}

// render draws the session's screen, editing the last screen message when
// there is one.
func (b *Bot) render(chatID, userID int64, st *chatState) {
	opts := b.renderOptions()
	opts.ShowAdminToggle = b.canAdmin(userID)
	content := services.RenderSession(st.session, opts)
	kb := cardMarkup(content)

	if st.screenID != 0 {
		edit := tgbotapi.NewEditMessageText(chatID, st.screenID, content.Text)
		if kb != nil {
			edit.ReplyMarkup = kb
		}
		_, err := b.api.Send(edit)
		if err == nil {
			return
		}
		errStr := err.Error()
		if strings.Contains(errStr, "not modified") {
			return
		}
		if !strings.Contains(errStr, "not found") {
			b.log.Warn("edit screen", zap.Int64("chat_id", chatID), zap.Error(err))
			return
		}
	}
	msg := tgbotapi.NewMessage(chatID, content.Text)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	sent, err := b.api.Send(msg)
	if err != nil {
		b.log.Warn("send screen", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}
	st.screenID = sent.MessageID
}

// cardMarkup converts ScreenContent.Buttons to a Telegram inline keyboard (URL vs callback).
func cardMarkup(c services.ScreenContent) *tgbotapi.InlineKeyboardMarkup {
	if len(c.Buttons) == 0 {
		return nil
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range c.Buttons {
		var btns []tgbotapi.InlineKeyboardButton
		for _, btn := range row {
			if btn.URL != "" {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonURL(btn.Text, btn.URL))
			} else {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.CallbackData))
			}
		}
		if len(btns) > 0 {
			rows = append(rows, btns)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func (b *Bot) persistCatalog(ctx context.Context) {
	if err := services.SaveCatalog(ctx, b.store, b.catalog); err != nil {
		b.log.Error("persist catalog", zap.Error(err))
	}
}

// notifyBusiness sends the order text to the business chat, if one is set up.
// The customer's WhatsApp link is the primary handoff; this is best effort.
func (b *Bot) notifyBusiness(h services.OrderHandoff) {
	b.log.Info("order handed off", zap.Int64("grand_total", h.GrandTotal))
	if b.messageBot == nil || b.cfg.Telegram.BusinessChatID == 0 {
		return
	}
	msg := tgbotapi.NewMessage(b.cfg.Telegram.BusinessChatID, h.Message)
	if _, err := b.messageBot.Send(msg); err != nil {
		b.log.Warn("notify business chat", zap.Error(err))
	}
}
