package extract

import (
	"strings"
	"testing"
)

func TestPanelText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "divs become lines",
			in:   `<div>Valley Clinic</div><div>123 Main St, Springfield, CA 94000</div>`,
			want: "Valley Clinic\n123 Main St, Springfield, CA 94000",
		},
		{
			name: "br splits a line",
			in:   `<div>123 Main St,<br>Springfield,<br>CA 94000</div>`,
			want: "123 Main St,\nSpringfield,\nCA 94000",
		},
		{
			name: "script and style are skipped",
			in:   `<div>visible</div><script>var hidden = 1;</script><style>.x{}</style>`,
			want: "visible",
		},
		{
			name: "nested inline elements stay on one line",
			in:   `<p><b>123 Main St</b>, <i>Springfield</i>, CA 94000</p>`,
			want: "123 Main St, Springfield, CA 94000",
		},
		{
			name: "list items become lines",
			in:   `<ul><li>first</li><li>second</li></ul>`,
			want: "first\nsecond",
		},
		{
			name: "blank lines are dropped",
			in:   `<div>a</div><div>  </div><div>b</div>`,
			want: "a\nb",
		},
		{
			name: "empty fragment",
			in:   ``,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := PanelText(tt.in)
			if err != nil {
				t.Fatalf("PanelText() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("PanelText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestPanelTextFeedsWindowedPass checks the end-to-end shape: HTML with
// label/value markup flattens into lines the windowed pass can join.
func TestPanelTextFeedsWindowedPass(t *testing.T) {
	t.Parallel()

	html := `<div id="sidebar">
		<div class="name">Harbor Health</div>
		<div class="street">9 Pier Rd,</div>
		<div class="city">Half Moon Bay,</div>
		<div class="zip">CA 94019</div>
	</div>`

	text, err := PanelText(html)
	if err != nil {
		t.Fatalf("PanelText() unexpected error: %v", err)
	}

	got := NewExtractor("CA").Extract(text)
	want := "9 Pier Rd, Half Moon Bay, CA 94019"
	if len(got) != 1 || got[0] != want {
		t.Errorf("Extract(PanelText()) = %v, want [%q]", got, want)
	}
	if strings.Contains(text, "<") {
		t.Errorf("PanelText() left markup in output: %q", text)
	}
}
