package discovery

import (
	"strings"
	"testing"
)

func TestParseManifest(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		wantErr  bool
	}{
		{
			name: "test executables extracted in order",
			input: `{"reason":"compiler-artifact","target":{"name":"fedimint-core"},"executable":null}
{"reason":"compiler-artifact","target":{"name":"fedimint-tests"},"executable":"/build/deps/fedimint_tests-9f3c21ab"}
{"reason":"compiler-artifact","target":{"name":"ln-gateway"},"executable":"/build/deps/ln_gateway-5e6f7a8b"}
{"reason":"build-finished","success":true}
`,
			expected: []string{"/build/deps/fedimint_tests-9f3c21ab", "/build/deps/ln_gateway-5e6f7a8b"},
		},
		{
			name: "plain diagnostic lines skipped",
			input: `   Compiling fedimint-core v0.1.0
{"reason":"compiler-artifact","target":{"name":"mint-tests"},"executable":"/build/deps/fedimint_mint_tests-44ddee00"}
    Finished test profile
`,
			expected: []string{"/build/deps/fedimint_mint_tests-44ddee00"},
		},
		{
			name:     "empty stream",
			input:    "",
			expected: nil,
		},
		{
			name:    "truncated message errors",
			input:   `{"reason":"compiler-artifact","target":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifacts, err := ParseManifest(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			paths := Paths(artifacts)
			if len(paths) != len(tt.expected) {
				t.Fatalf("expected %d artifacts, got %d: %v", len(tt.expected), len(paths), paths)
			}
			for i, p := range tt.expected {
				if paths[i] != p {
					t.Errorf("artifact %d = %s, want %s", i, paths[i], p)
				}
			}
		})
	}

	t.Run("target names carried through", func(t *testing.T) {
		input := `{"reason":"compiler-artifact","target":{"name":"wallet-tests"},"executable":"/build/deps/fedimint_wallet_tests-0a1b2c3d"}`
		artifacts, err := ParseManifest(strings.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		if len(artifacts) != 1 || artifacts[0].Name != "wallet-tests" {
			t.Errorf("unexpected artifacts: %+v", artifacts)
		}
	})
}

func TestParseExecutableLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name: "executable lines scraped",
			input: `   Compiling fedimint-tests v0.1.0
    Finished test [unoptimized + debuginfo] target(s) in 2m 13s
  Executable unittests tests/tests.rs (/build/deps/fedimint_tests-9f3c21ab)
  Executable unittests tests/tests.rs (/build/deps/ln_gateway-5e6f7a8b)
`,
			expected: []string{"/build/deps/fedimint_tests-9f3c21ab", "/build/deps/ln_gateway-5e6f7a8b"},
		},
		{
			name:     "marker without parentheses ignored",
			input:    "Executable but no path here\n",
			expected: nil,
		},
		{
			name:     "no markers",
			input:    "   Compiling foo\n   Finished\n",
			expected: nil,
		},
		{
			name:     "last parenthesized segment wins",
			input:    "  Executable unittests (with caveat) (/build/deps/fedimint_mint_tests-44ddee00)\n",
			expected: []string{"/build/deps/fedimint_mint_tests-44ddee00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := ParseExecutableLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(paths) != len(tt.expected) {
				t.Fatalf("expected %d paths, got %d: %v", len(tt.expected), len(paths), paths)
			}
			for i, p := range tt.expected {
				if paths[i] != p {
					t.Errorf("path %d = %s, want %s", i, paths[i], p)
				}
			}
		})
	}
}
