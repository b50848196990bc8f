// Package prompt implements validated console input. Each prompt kind
// converts one line of raw text into a constrained value, re-prompting with
// a specific corrective message until the input satisfies the field rules.
// Read failures are never fatal: the prompter reports a generic message and
// asks again.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prompter reads validated values from a line-oriented input stream.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	money *message.Printer
}

// New creates a Prompter over the given streams.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(r),
		out:   w,
		money: message.NewPrinter(language.English),
	}
}

// Printf writes to the prompter's output stream.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the prompter's output stream.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// ShowError prints a corrective message in the standard [ERROR] form.
func (p *Prompter) ShowError(msg string) {
	fmt.Fprintln(p.out, "[ERROR] "+msg)
}

// Money formats a currency amount with thousands grouping.
func (p *Prompter) Money(v float64) string {
	return p.money.Sprintf("%.2f", v)
}

// readRaw prints the label and reads one raw line. ok is false on a read
// failure, after the generic retry message has been shown.
func (p *Prompter) readRaw(label string) (string, bool) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		p.ShowError("Error reading input. Please try again.")
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// readLine is readRaw with surrounding whitespace trimmed.
func (p *Prompter) readLine(label string) (string, bool) {
	line, ok := p.readRaw(label)
	return strings.TrimSpace(line), ok
}

// NonEmpty re-prompts until a non-empty trimmed line is entered.
func (p *Prompter) NonEmpty(label string) string {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		if line == "" {
			p.ShowError("Input cannot be empty. Please provide a value.")
			continue
		}
		return line
	}
}

// Optional accepts any trimmed line, including empty.
func (p *Prompter) Optional(label string) string {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		return line
	}
}

// Alpha re-prompts until a non-empty name-class line is entered.
func (p *Prompter) Alpha(label string) string {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		if line == "" {
			p.ShowError("Input cannot be empty. Please enter letters only.")
			continue
		}
		if !IsValidName(line) {
			p.ShowError("Please use letters, spaces, apostrophes ('), hyphens (-) or periods (.) only. Numbers are not allowed.")
			continue
		}
		return line
	}
}

// AlphaOptional accepts an empty line, otherwise applies the name rules.
func (p *Prompter) AlphaOptional(label string) string {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		if line == "" {
			return ""
		}
		if !IsValidName(line) {
			p.ShowError("Please use letters, spaces, apostrophes ('), hyphens (-) or periods (.) only. Numbers are not allowed.")
			continue
		}
		return line
	}
}

// PhoneOptional accepts an empty line, otherwise phone characters only.
func (p *Prompter) PhoneOptional(label string) string {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		if line == "" {
			return ""
		}
		if !IsValidPhone(line) {
			p.ShowError("Phone may contain only digits, spaces, +, -, and parentheses. Example: +63 912-345-6789")
			continue
		}
		return line
	}
}

// DigitsOptional accepts an empty line, otherwise digits only.
func (p *Prompter) DigitsOptional(label string) string {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		if line == "" {
			return ""
		}
		if !IsDigits(line) {
			p.ShowError("Digits only. Leave blank if not available.")
			continue
		}
		return line
	}
}

// IntRange re-prompts until an integer in [min, max] is entered.
func (p *Prompter) IntRange(label string, min, max int) int {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		if line == "" {
			p.ShowError("Input cannot be empty. Enter a number.")
			continue
		}
		if !IsInteger(line) {
			p.ShowError("Invalid number. Enter digits only (no letters).")
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			p.ShowError("Number out of range. Try again.")
			continue
		}
		if v < min || v > max {
			p.ShowError(fmt.Sprintf("Enter a number between %d and %d.", min, max))
			continue
		}
		return v
	}
}

// DecimalRange re-prompts until a non-negative decimal in [min, max] is
// entered.
func (p *Prompter) DecimalRange(label string, min, max float64) float64 {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		if line == "" {
			p.ShowError("Input cannot be empty. Enter a number.")
			continue
		}
		if !IsDecimal(line) {
			p.ShowError("Invalid number format. Use digits and optional decimal point.")
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			p.ShowError("Invalid number. Try again.")
			continue
		}
		if v < min || v > max {
			p.ShowError(fmt.Sprintf("Enter a value between %g and %g.", min, max))
			continue
		}
		return v
	}
}

// DecimalMin re-prompts until a non-negative decimal >= min is entered.
func (p *Prompter) DecimalMin(label string, min float64) float64 {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		if line == "" {
			p.ShowError("Input cannot be empty. Enter a numeric amount.")
			continue
		}
		if !IsDecimal(line) {
			p.ShowError("Invalid amount. Use digits and optional decimal point.")
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			p.ShowError("Invalid amount. Try again.")
			continue
		}
		if v < min {
			p.ShowError("Enter an amount >= " + p.Money(min))
			continue
		}
		return v
	}
}

// Email re-prompts until a well-formed, unused email address is entered.
// The result is lowercased. taken reports whether an address is already
// registered; pass nil to skip the uniqueness check.
func (p *Prompter) Email(label string, taken func(string) bool) string {
	for {
		line, ok := p.readLine(label)
		if !ok {
			continue
		}
		if line == "" {
			p.ShowError("Input cannot be empty. Please provide a value.")
			continue
		}
		email := strings.ToLower(line)
		if !IsValidEmail(email) {
			p.ShowError("Invalid email format. Example: user@example.com")
			continue
		}
		if taken != nil && taken(email) {
			p.ShowError("Email already registered. Use another email or choose Login.")
			continue
		}
		return email
	}
}

// PasswordWithConfirmation reads a password of at least minLen characters,
// then a confirmation. Any failure restarts from the first entry.
// Passwords are taken verbatim; no whitespace trimming.
func (p *Prompter) PasswordWithConfirmation(createLabel, confirmLabel string, minLen int) string {
	for {
		pass, ok := p.readRaw(createLabel)
		if !ok {
			continue
		}
		if len(pass) < minLen {
			p.ShowError(fmt.Sprintf("Password must be at least %d characters.", minLen))
			continue
		}
		confirm, ok := p.readRaw(confirmLabel)
		if !ok {
			continue
		}
		if pass != confirm {
			p.ShowError("Passwords do not match. Try again.")
			continue
		}
		return pass
	}
}
