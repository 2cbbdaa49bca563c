package answer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"trim", "  ls -la  ", "ls -la"},
		{"lower", "SELECT * FROM T", "select * from t"},
		{"collapse spaces", "select   *\tfrom\n\nt", "select * from t"},
		{"crlf", "grep foo\r\n| wc -l", "grep foo | wc -l"},
		{"unicode space", "ls\u00a0\u3000-l", "ls -l"},
		{"punctuation kept", "a=1;", "a=1;"},
		{"information separators", "\x1cls\x1d\x1e-l\x1f", "ls -l"},
		{"next line", "ls\u0085-l", "ls -l"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"SELECT  *  FROM t",
		"\tfind . -name '*.go'\n",
		"Ünïcödé   ÀÉ",
		"a\u00a0b\u3000c",
		"tail -n 20 /var/log/syslog | grep -i error",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		canonical string
		want      bool
	}{
		{"case and spacing", "SELECT  *  FROM t", "select * from t", true},
		{"multiline answer", "select *\nfrom t", "select * from t", true},
		{"exact", "pwd", "pwd", true},
		{"semantically equal but lexically different", "select * from t where a=1", "select * from t where 1=a", false},
		{"column order differs", "select a, b from t", "select b, a from t", false},
		{"empty against non-empty", "", "ls", false},
		{"both empty", "  ", "", true},
		{"interior spacing matters", "ls -la", "ls - la", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCorrect(tt.submitted, tt.canonical); got != tt.want {
				t.Errorf("IsCorrect(%q, %q) = %v, want %v", tt.submitted, tt.canonical, got, tt.want)
			}
		})
	}
}
