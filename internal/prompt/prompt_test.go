package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPrompter(input string) (*Prompter, *strings.Builder) {
	out := &strings.Builder{}
	return New(strings.NewReader(input), out), out
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.co"))
	assert.True(t, IsValidEmail("juan.delacruz@example.edu.ph"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("a b@c.co"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("a@@b.co"))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("María-José O'Brien"))
	assert.True(t, IsValidName("Jr."))
	assert.False(t, IsValidName("John3"))
	assert.False(t, IsValidName(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+63 912-345-6789"))
	assert.True(t, IsValidPhone("(02) 8888 1234"))
	assert.False(t, IsValidPhone("call me"))
}

func TestIsDecimal(t *testing.T) {
	assert.True(t, IsDecimal("8750"))
	assert.True(t, IsDecimal("8750.50"))
	assert.False(t, IsDecimal("-1"))
	assert.False(t, IsDecimal("1e3"))
	assert.False(t, IsDecimal("1."))
	assert.False(t, IsDecimal(".5"))
}

func TestNonEmptyRepromptsOnBlank(t *testing.T) {
	p, out := newTestPrompter("\n   \nJuan\n")
	got := p.NonEmpty("Name: ")
	assert.Equal(t, "Juan", got)
	assert.Contains(t, out.String(), "Input cannot be empty")
}

func TestOptionalAcceptsEmpty(t *testing.T) {
	p, _ := newTestPrompter("\n")
	assert.Equal(t, "", p.Optional("Religion: "))
}

func TestAlphaRejectsDigits(t *testing.T) {
	p, out := newTestPrompter("John3\nJohn\n")
	got := p.Alpha("First name: ")
	assert.Equal(t, "John", got)
	assert.Contains(t, out.String(), "Numbers are not allowed")
}

func TestAlphaOptionalAcceptsAccentedName(t *testing.T) {
	p, _ := newTestPrompter("María-José O'Brien\n")
	assert.Equal(t, "María-José O'Brien", p.AlphaOptional("Middle name: "))
}

func TestIntRangeBounds(t *testing.T) {
	p, out := newTestPrompter("abc\n0\n5\n3\n")
	got := p.IntRange("Year: ", 1, 4)
	assert.Equal(t, 3, got)
	assert.Contains(t, out.String(), "Invalid number. Enter digits only")
	assert.Contains(t, out.String(), "Enter a number between 1 and 4.")
}

func TestDecimalRangeRejectsSignsAndExponents(t *testing.T) {
	p, out := newTestPrompter("-5\n1e2\n101\n92.5\n")
	got := p.DecimalRange("GWA: ", 0, 100)
	assert.Equal(t, 92.5, got)
	assert.Contains(t, out.String(), "Invalid number format")
	assert.Contains(t, out.String(), "Enter a value between 0 and 100.")
}

func TestDecimalMin(t *testing.T) {
	p, _ := newTestPrompter("0\n")
	assert.Equal(t, 0.0, p.DecimalMin("Amount: ", 0))
}

func TestEmailLowercasesAndChecksUniqueness(t *testing.T) {
	taken := func(email string) bool { return email == "used@example.com" }
	p, out := newTestPrompter("not-an-email\nUsed@Example.com\nNew@Example.com\n")
	got := p.Email("Email: ", taken)
	assert.Equal(t, "new@example.com", got)
	assert.Contains(t, out.String(), "Invalid email format")
	assert.Contains(t, out.String(), "Email already registered")
}

func TestPasswordConfirmationRestartsFromFirstEntry(t *testing.T) {
	p, out := newTestPrompter("short\nsecret1\nwrong-confirm\nsecret2\nsecret2\n")
	got := p.PasswordWithConfirmation("Create password: ", "Confirm password: ", 6)
	assert.Equal(t, "secret2", got)
	assert.Contains(t, out.String(), "Password must be at least 6 characters.")
	assert.Contains(t, out.String(), "Passwords do not match")
}

func TestMoneyFormatting(t *testing.T) {
	p, _ := newTestPrompter("")
	assert.Equal(t, "8,750.00", p.Money(8750))
	assert.Equal(t, "0.00", p.Money(0))
}
