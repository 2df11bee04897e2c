package goldmark_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/fwojciec/convo/goldmark"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	return re.ReplaceAllString(s, "")
}

func TestMain(m *testing.M) {
	// Force colour output so styled elements produce escape codes.
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

func TestRender(t *testing.T) {
	t.Parallel()

	theme := convo.LightTheme()

	t.Run("empty input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", goldmark.Render("", 80, theme))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("Jetpack Compose", 80, theme)
		assert.Equal(t, "Jetpack Compose", stripANSI(result))
	})

	t.Run("single newlines are kept as line breaks", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("List of Android versions:\nAndroid KitKat (API 19)", 80, theme)
		lines := strings.Split(stripANSI(result), "\n")
		assert.Equal(t, []string{"List of Android versions:", "Android KitKat (API 19)"}, lines)
	})

	t.Run("heading renders with distinct styling", func(t *testing.T) {
		t.Parallel()
		heading := goldmark.Render("# Title", 80, theme)
		paragraph := goldmark.Render("Title", 80, theme)
		assert.Equal(t, "Title", stripANSI(heading))
		assert.NotEqual(t, heading, paragraph)
	})

	t.Run("emphasis is styled", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("**bold** and *italic*", 80, theme)
		assert.Equal(t, "bold and italic", stripANSI(result))
		assert.NotEqual(t, "bold and italic", result)
	})

	t.Run("inline code", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("use `remember`", 80, theme)
		assert.Contains(t, stripANSI(result), "use remember")
	})

	t.Run("fenced code block keeps content and language", func(t *testing.T) {
		t.Parallel()
		src := "```kotlin\nvar isExpanded by remember { mutableStateOf(false) }\n```"
		result := stripANSI(goldmark.Render(src, 20, theme))
		assert.Contains(t, result, "kotlin")
		assert.Contains(t, result, "│ var isExpanded by remember { mutableStateOf(false) }")
	})

	t.Run("bullet list", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("- one\n- two\n- three", 80, theme))
		assert.Equal(t, "• one\n• two\n• three", result)
	})

	t.Run("ordered list honours start number", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("3. third\n4. fourth", 80, theme))
		assert.Equal(t, "3. third\n4. fourth", result)
	})

	t.Run("nested list is indented", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("- outer\n  - inner", 80, theme))
		assert.Contains(t, result, "• outer")
		assert.Contains(t, result, "  • inner")
	})

	t.Run("list item continuation lines are indented", func(t *testing.T) {
		t.Parallel()
		src := "- this is a very long list item that should wrap onto continuation lines"
		lines := strings.Split(stripANSI(goldmark.Render(src, 30, theme)), "\n")
		assert.True(t, strings.HasPrefix(lines[0], "• "))
		assert.Greater(t, len(lines), 1)
		for _, line := range lines[1:] {
			assert.True(t, strings.HasPrefix(line, "  "), "continuation line should be indented: %q", line)
		}
	})

	t.Run("link shows text and URL", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("[docs](https://developer.android.com)", 80, theme))
		assert.Equal(t, "docs (https://developer.android.com)", result)
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		long := "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10 word11 word12"
		lines := strings.Split(stripANSI(goldmark.Render(long, 30, theme)), "\n")
		assert.Greater(t, len(lines), 1)
		for _, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), 30)
		}
	})

	t.Run("paragraphs separated by blank line", func(t *testing.T) {
		t.Parallel()
		result := stripANSI(goldmark.Render("first\n\nsecond", 80, theme))
		assert.Equal(t, "first\n\nsecond", result)
	})

	t.Run("width zero defaults to 80", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("hello world", 0, theme)
		assert.Equal(t, "hello world", stripANSI(result))
	})
}
