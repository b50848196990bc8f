package handler

import (
	"strconv"
	"strings"
)

// adminPanel gates on the configured admin password and serves the account
// listing until the admin quits back to the main menu.
func (h *Handler) adminPanel() {
	h.printHeader("ADMIN PANEL")
	password := h.pr.Optional("Enter admin password (blank to cancel): ")
	if password == "" {
		h.pr.Println("Cancelled admin access.")
		return
	}
	if err := h.svc.VerifyAdmin(password); err != nil {
		h.pr.ShowError("Incorrect admin password.")
		return
	}
	h.pr.Println("Admin access granted.")

	for {
		rows := h.svc.Accounts()
		h.pr.Printf("\nRegistered Students (%d):\n", len(rows))
		h.pr.Println("Idx  Email                           Student Name                     Program                         Enrolled")
		h.pr.Println("---------------------------------------------------------------------------------------------------------------")
		for i, row := range rows {
			h.pr.Printf("%-4d %-32s %-30s %-32s %-8s\n",
				i+1, truncate(row.Email, 32), truncate(row.Name, 30), truncate(row.Program, 32), row.Enrolled)
		}

		h.pr.Println("\nOptions: [number] View details  |  r Refresh  |  q Quit to main menu")
		cmd := strings.ToLower(h.pr.NonEmpty("Choice: "))
		switch {
		case cmd == "q":
			return
		case cmd == "r":
			continue
		case isIndex(cmd):
			idx, _ := strconv.Atoi(cmd)
			if idx < 1 || idx > len(rows) {
				h.pr.ShowError("Invalid index.")
				continue
			}
			email := rows[idx-1].Email
			h.pr.Println("\n--- DETAILS FOR: " + email + " ---")
			if text, ok := h.svc.AssessmentFor(email); ok {
				h.pr.Println(text)
			} else {
				h.pr.Println("No in-memory profile or assessment file found for this user.")
			}
			h.pr.Optional("\nPress Enter to return to admin list...")
		default:
			h.pr.ShowError("Unknown command.")
		}
	}
}

func isIndex(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
