package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bookchat/seeker/internal/client"
	"github.com/bookchat/seeker/internal/config"
	"github.com/bookchat/seeker/internal/export"
	"github.com/bookchat/seeker/internal/model/appointment"
	"github.com/bookchat/seeker/internal/model/chat"
	"github.com/bookchat/seeker/internal/model/user"
	authService "github.com/bookchat/seeker/internal/service/auth"
	"github.com/bookchat/seeker/internal/service/conversation"
)

// app drives the terminal views over the chat core. It is the presentation
// layer: every state change goes through the controller or the gate.
type app struct {
	gate       *authService.Gate
	controller *conversation.Controller
	scanner    *bufio.Scanner
	out        io.Writer
	openChat   bool // set by the controller's navigate callback
}

func newApp(cfg *config.Config, in io.Reader, out io.Writer) *app {
	a := &app{
		scanner: bufio.NewScanner(in),
		out:     out,
	}

	// The gate authenticates through the HTTP client, and the client signs
	// appointment requests with the gate's token.
	api := client.New(cfg.API, func() (string, bool) {
		if a.gate == nil {
			return "", false
		}
		return a.gate.Token()
	})
	a.gate = authService.NewGate(api)

	registry := conversation.NewRegistry(chat.Seed())
	messageLog := conversation.NewLog()
	messageLog.Preload(1, chat.SeedTranscript())

	a.controller = conversation.NewController(
		a.gate, registry, messageLog, conversation.NewComposer(), api,
		func() { a.openChat = true },
	)
	return a
}

func (a *app) run(ctx context.Context) error {
	fmt.Fprintln(a.out, "BookChat")
	for {
		if !a.gate.Authenticated() {
			if done := a.loginView(ctx); done {
				return nil
			}
			continue
		}
		if done := a.mainView(ctx); done {
			return nil
		}
	}
}

// loginView runs the login/register form until the gate opens or input ends.
// It returns true when the client should exit.
func (a *app) loginView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\nCommands: login, register, quit")
	line, ok := a.prompt("auth> ")
	if !ok {
		return true
	}

	switch line {
	case "login":
		email, _ := a.prompt("email: ")
		password, _ := a.prompt("password: ")
		if _, err := a.gate.Login(ctx, email, password); err != nil {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
			return false
		}
		fmt.Fprintln(a.out, "Login successful!")
	case "register":
		profile := user.Profile{Role: "seeker"}
		profile.Name, _ = a.prompt("name: ")
		profile.Email, _ = a.prompt("email: ")
		profile.Phone, _ = a.prompt("phone: ")
		profile.Password, _ = a.prompt("password: ")
		if err := a.gate.Register(ctx, profile); err != nil {
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
			return false
		}
		// Back to the login form; registering does not sign in.
		fmt.Fprintln(a.out, "Registered successfully! Please log in.")
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(a.out, "Unknown command: %s\n", line)
	}
	return false
}

// mainView runs the authenticated command loop. It returns true when the
// client should exit.
func (a *app) mainView(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\nCommands: chats, open <id>, history, appointments, reschedule <id>, export <format> <file>, logout, quit")
	fmt.Fprintln(a.out, "Anything else is sent as a message to the open conversation.")

	for a.gate.Authenticated() {
		line, ok := a.prompt(a.promptLabel())
		if !ok {
			return true
		}
		if line == "" {
			continue
		}

		field := strings.Fields(line)
		switch field[0] {
		case "chats":
			a.renderChats()
		case "open":
			if len(field) != 2 {
				fmt.Fprintln(a.out, "usage: open <id>")
				continue
			}
			a.openConversation(field[1])
		case "history":
			a.renderHistory()
		case "appointments":
			a.renderAppointments(ctx)
		case "reschedule":
			if len(field) != 2 {
				fmt.Fprintln(a.out, "usage: reschedule <id>")
				continue
			}
			a.reschedule(ctx, field[1])
		case "export":
			if len(field) != 3 {
				fmt.Fprintln(a.out, "usage: export <json|yaml|md> <file>")
				continue
			}
			a.exportTranscript(field[1], field[2])
		case "logout":
			a.controller.Logout()
			fmt.Fprintln(a.out, "Logged out successfully")
		case "quit", "exit":
			return true
		default:
			a.send(line)
		}
	}
	return false
}

func (a *app) promptLabel() string {
	if selected, ok := a.controller.Selected(); ok {
		return selected.ProviderName + "> "
	}
	return "bookchat> "
}

func (a *app) renderChats() {
	for _, session := range a.controller.Conversations() {
		marker := " "
		if selected, ok := a.controller.Selected(); ok && selected.ID == session.ID {
			marker = "*"
		}
		unread := ""
		if session.Unread > 0 {
			unread = fmt.Sprintf(" [%d unread]", session.Unread)
		}
		fmt.Fprintf(a.out, "%s %d. %s%s\n    %s (%s)\n",
			marker, session.ID, session.ProviderName, unread, session.LastMessage, session.Timestamp)
	}
}

func (a *app) openConversation(raw string) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(a.out, "usage: open <id>")
		return
	}
	session, err := a.controller.Select(id)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open conversation: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Conversation with %s\n", session.ProviderName)
	a.enterConversation()
	a.renderHistory()
}

// enterConversation is the view-activation hook: it applies a pending
// pre-fill to the visible draft exactly once.
func (a *app) enterConversation() {
	a.openChat = false
	if text, ok := a.controller.EnterConversation(); ok {
		fmt.Fprintf(a.out, "Draft: %s\n", text)
		fmt.Fprintln(a.out, "(press enter on an empty line to discard, or type to replace)")
	}
}

func (a *app) renderHistory() {
	history := a.controller.History()
	if len(history) == 0 {
		fmt.Fprintln(a.out, "No messages yet.")
		return
	}
	for _, msg := range history {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", msg.Timestamp, msg.Sender, msg.Text)
	}
}

func (a *app) send(text string) {
	a.controller.SetDraft(text)
	msg, err := a.controller.Send()
	if err != nil {
		fmt.Fprintf(a.out, "Cannot send: %v\n", err)
		return
	}
	if msg.ID == 0 {
		// Whitespace-only draft; nothing was sent.
		return
	}
	fmt.Fprintf(a.out, "[%s] you: %s\n", msg.Timestamp, msg.Text)
}

func (a *app) renderAppointments(ctx context.Context) {
	upcoming, err := a.controller.Upcoming(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot load appointments: %v\n", err)
		return
	}
	past, err := a.controller.Past(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot load appointments: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Upcoming:")
	for _, appt := range upcoming {
		fmt.Fprintf(a.out, "  %d. %s — %s at %s (%s)\n", appt.ID, appt.ProviderName, appt.Date, appt.Time, appt.Type)
	}
	fmt.Fprintln(a.out, "Past:")
	for _, appt := range past {
		fmt.Fprintf(a.out, "  %d. %s — %s at %s (%s)\n", appt.ID, appt.ProviderName, appt.Date, appt.Time, appt.Type)
	}
}

func (a *app) reschedule(ctx context.Context, raw string) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(a.out, "usage: reschedule <id>")
		return
	}

	upcoming, err := a.controller.Upcoming(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot load appointments: %v\n", err)
		return
	}

	var target *appointment.Appointment
	for i := range upcoming {
		if upcoming[i].ID == id {
			target = &upcoming[i]
			break
		}
	}
	if target == nil {
		fmt.Fprintf(a.out, "No upcoming appointment with id %d\n", id)
		return
	}

	a.controller.RequestReschedule(*target)
	fmt.Fprintln(a.out, "Opening chat to reschedule appointment")

	if a.openChat {
		// The controller asked for the conversation view; switch to it and
		// let the pre-fill land in the draft.
		if session := a.findConversation(target.ProviderName); session != nil {
			if _, err := a.controller.Select(session.ID); err == nil {
				fmt.Fprintf(a.out, "Conversation with %s\n", session.ProviderName)
			}
		}
		a.enterConversation()
	}
}

func (a *app) findConversation(providerName string) *chat.Session {
	for _, session := range a.controller.Conversations() {
		if session.ProviderName == providerName {
			return &session
		}
	}
	return nil
}

func (a *app) exportTranscript(format, path string) {
	selected, ok := a.controller.Selected()
	if !ok {
		fmt.Fprintln(a.out, "Open a conversation first.")
		return
	}

	exporter, err := export.NewExporter(format)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot export: %v\n", err)
		return
	}

	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot export: %v\n", err)
		return
	}
	defer file.Close()

	transcript := export.Transcript{
		Provider:   selected.ProviderName,
		ExportedAt: time.Now().Format("2006-01-02 15:04"),
		Messages:   a.controller.History(),
	}
	if err := exporter.Export(transcript, file); err != nil {
		fmt.Fprintf(a.out, "Cannot export: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Exported %d messages to %s\n", len(transcript.Messages), path)
}

func (a *app) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}
