package fetch

import (
	"strings"
	"testing"
)

func TestExtractPage_Metadata(t *testing.T) {
	html := `<html><head>
		<title> Acme Corp </title>
		<meta name="description" content="Acme makes everything.">
		<meta property="og:title" content="Acme - Home">
		<meta property="og:description" content="The everything company.">
	</head><body><main>Welcome to Acme.</main></body></html>`

	meta, err := ExtractPage(html)
	if err != nil {
		t.Fatalf("ExtractPage() error = %v", err)
	}

	if meta.Title != "Acme Corp" {
		t.Errorf("Title = %q, want %q", meta.Title, "Acme Corp")
	}
	if meta.Description != "Acme makes everything." {
		t.Errorf("Description = %q, want %q", meta.Description, "Acme makes everything.")
	}
	if meta.OGTitle != "Acme - Home" {
		t.Errorf("OGTitle = %q, want %q", meta.OGTitle, "Acme - Home")
	}
	if meta.OGDescription != "The everything company." {
		t.Errorf("OGDescription = %q, want %q", meta.OGDescription, "The everything company.")
	}
	if meta.Text != "Welcome to Acme." {
		t.Errorf("Text = %q, want %q", meta.Text, "Welcome to Acme.")
	}
}

func TestExtractPage_ReversedAttributeOrder(t *testing.T) {
	// content before name; the parser must not care about attribute order
	html := `<html><head><meta content="Reversed order works." name="description"></head><body>x</body></html>`

	meta, err := ExtractPage(html)
	if err != nil {
		t.Fatalf("ExtractPage() error = %v", err)
	}
	if meta.Description != "Reversed order works." {
		t.Errorf("Description = %q, want %q", meta.Description, "Reversed order works.")
	}
}

func TestExtractPage_StripsNoiseElements(t *testing.T) {
	html := `<html><body>
		<header>Site Header</header>
		<nav>Home About</nav>
		<script>var x = 1;</script>
		<style>.a { color: red }</style>
		<p>Real   content
		here.</p>
		<footer>Copyright</footer>
	</body></html>`

	meta, err := ExtractPage(html)
	if err != nil {
		t.Fatalf("ExtractPage() error = %v", err)
	}

	for _, noise := range []string{"Site Header", "Home About", "var x", "color: red", "Copyright"} {
		if strings.Contains(meta.Text, noise) {
			t.Errorf("Text contains stripped element content %q: %q", noise, meta.Text)
		}
	}
	if meta.Text != "Real content here." {
		t.Errorf("Text = %q, want whitespace-collapsed %q", meta.Text, "Real content here.")
	}
}

func TestExtractPage_TruncatesLongContent(t *testing.T) {
	body := strings.Repeat("word ", 5000) // ~25k chars
	meta, err := ExtractPage("<html><body>" + body + "</body></html>")
	if err != nil {
		t.Fatalf("ExtractPage() error = %v", err)
	}

	if len(meta.Text) != MaxContentLength+3 {
		t.Errorf("len(Text) = %d, want %d", len(meta.Text), MaxContentLength+3)
	}
	if !strings.HasSuffix(meta.Text, "...") {
		t.Error("truncated text missing ellipsis marker")
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"example.com", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"www.example.com/about", "https://www.example.com/about"},
	}

	for _, tt := range tests {
		if got := NormalizeURL(tt.input); got != tt.expected {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
