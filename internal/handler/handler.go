// Package handler is the interactive console surface: landing banner, main
// menu and the admin panel. It delegates all business logic to the service.
package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sacarias/enrollment-system/internal/prompt"
	"github.com/sacarias/enrollment-system/internal/service"
)

const bannerWidth = 80

// Handler drives the interactive menu loop.
type Handler struct {
	svc *service.Service
	pr  *prompt.Prompter
	log *logrus.Logger
}

// NewHandler initializes the console handler.
func NewHandler(svc *service.Service, pr *prompt.Prompter, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, pr: pr, log: log}
}

// Run shows the landing banner and serves the main menu until the user
// exits. Any fault inside a menu action is trapped, logged and reported;
// the loop always continues.
func (h *Handler) Run() {
	h.showBanner()
	for {
		if exit := h.menuIteration(); exit {
			return
		}
	}
}

func (h *Handler) menuIteration() (exit bool) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Errorf("unexpected error in main menu: %v", r)
			h.pr.Println("[ERROR] An unexpected error occurred. Returning to main menu.")
		}
	}()

	h.printHeader("ISABELA STATE UNIVERSITY - SACARIAS ENROLLMENT")
	h.pr.Println("1) Register (New Student)")
	h.pr.Println("2) Login")
	h.pr.Println("3) Admin Panel")
	h.pr.Println("4) Exit")

	switch h.pr.NonEmpty("Choose an option (1-4): ") {
	case "1":
		h.svc.Register(h.pr)
		h.pause()
	case "2":
		h.login()
	case "3":
		h.adminPanel()
	case "4":
		h.pr.Println("Goodbye - thank you!")
		return true
	default:
		h.pr.ShowError("Invalid option. Enter 1, 2, 3 or 4.")
	}
	return false
}

func (h *Handler) login() {
	h.printHeader("LOGIN")
	email := strings.ToLower(h.pr.NonEmpty("Email: "))
	password := h.pr.NonEmpty("Password: ")

	if err := h.svc.Login(email, password); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownEmail):
			h.pr.ShowError("No account found for that email.")
		case errors.Is(err, service.ErrWrongPassword):
			h.pr.ShowError("Incorrect password.")
		default:
			h.log.Errorf("login failed for %s: %v", email, err)
			h.pr.ShowError("Login failed: " + err.Error())
		}
		return
	}
	h.pr.Println("Login successful. Welcome!")

	if text, ok := h.svc.AssessmentFor(email); ok {
		h.printHeader("SACARIAS ASSESSMENT")
		h.pr.Println(text)
	} else {
		h.pr.Println("No assessment file found for this account (maybe you registered in a previous run).")
	}
}

func (h *Handler) showBanner() {
	border := strings.Repeat("=", bannerWidth)
	h.pr.Println(border)
	h.printCentered("")
	h.printCentered("ISABELA STATE UNIVERSITY")
	h.printCentered("ENROLLMENT SYSTEM")
	h.printCentered("CCSICT Student Enrollment")
	h.printCentered("")
	h.printCentered("----------------------------------------")
	h.printCentered("Date: " + time.Now().Format("2006-01-02") +
		"   |   Registered accounts: " + strconv.Itoa(h.svc.RegisteredCount()))
	h.printCentered("----------------------------------------")
	h.printCentered("")
	h.printCentered("Welcome!")
	h.printCentered("")
	h.pr.Println(border)
}

func (h *Handler) printCentered(text string) {
	if len(text) >= bannerWidth {
		h.pr.Println(text)
		return
	}
	padding := (bannerWidth - len(text)) / 2
	h.pr.Println(strings.Repeat(" ", padding) + text)
}

func (h *Handler) printHeader(title string) {
	h.pr.Println()
	h.pr.Println("===================================================")
	h.pr.Println("   " + title)
	h.pr.Println("===================================================")
}

func (h *Handler) pause() {
	h.pr.Optional("\nPress Enter to continue...")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
