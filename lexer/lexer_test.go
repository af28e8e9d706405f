// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"math"
	"testing"
)

func TestLexer_ScanNumber(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    float64
		wantPos int
		wantErr bool
	}{
		{name: "integer", source: "42+1", want: 42, wantPos: 2},
		{name: "fraction", source: "3.25)", want: 3.25, wantPos: 4},
		{name: "trailing dot", source: "7.*2", want: 7, wantPos: 2},
		{name: "signed", source: "-12", want: -12, wantPos: 3},
		{name: "plus sign", source: "+0.5", want: 0.5, wantPos: 4},
		{name: "sign then fraction", source: "-.5", want: -0.5, wantPos: 3},
		{name: "exponent", source: "1e3", want: 1000, wantPos: 3},
		{name: "signed exponent", source: "25E-1 ", want: 2.5, wantPos: 5},
		{name: "exponent without digits", source: "2e+", want: 2, wantPos: 1},
		{name: "overflow saturates", source: "1e400", want: math.Inf(1), wantPos: 5},
		{name: "infinity", source: "-Infinity", want: math.Inf(-1), wantPos: 9},
		{name: "inf", source: "inf^2", want: math.Inf(1), wantPos: 3},
		{name: "hexadecimal", source: "0x10", want: 16, wantPos: 4},
		{name: "hexadecimal binary exponent", source: "0X1p4*", want: 16, wantPos: 5},
		{name: "hexadecimal negative exponent", source: "0x1P-1", want: 0.5, wantPos: 6},
		{name: "signed hexadecimal fraction", source: "-0x.8", want: -0.5, wantPos: 5},
		{name: "hexadecimal fraction", source: "0xA.8)", want: 10.5, wantPos: 5},
		{name: "hexadecimal exponent without digits", source: "0x1p", want: 1, wantPos: 3},
		{name: "hexadecimal prefix without digits", source: "0xg", want: 0, wantPos: 1},
		{name: "bare hexadecimal prefix", source: "0x", want: 0, wantPos: 1},
		{name: "bare sign", source: "+", wantErr: true},
		{name: "sign then space", source: "- 2", wantErr: true},
		{name: "letters", source: "abc", wantErr: true},
		{name: "lone dot", source: ".", wantErr: true},
		{name: "empty", source: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.source)
			got, err := l.ScanNumber()
			if (err != nil) != tt.wantErr {
				t.Errorf("Lexer.ScanNumber() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				if !errors.Is(err, ErrMalformedNumber) {
					t.Errorf("Lexer.ScanNumber() error = %v, want %v", err, ErrMalformedNumber)
				}
				if l.Pos() != 0 {
					t.Errorf("Lexer.Pos() after failed scan = %d, want 0", l.Pos())
				}
				return
			}
			if got != tt.want {
				t.Errorf("Lexer.ScanNumber() = %v, want %v", got, tt.want)
			}
			if l.Pos() != tt.wantPos {
				t.Errorf("Lexer.Pos() = %d, want %d", l.Pos(), tt.wantPos)
			}
		})
	}
}

func TestLexer_ScanNumberNaN(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		wantNegative bool
		wantPos      int
	}{
		{name: "plain", source: "+NaN", wantPos: 4},
		{name: "character sequence", source: "nan(1)", wantPos: 6},
		{name: "negative character sequence", source: "-nan(a_Z9)+1", wantNegative: true, wantPos: 10},
		{name: "empty character sequence", source: "NAN()", wantPos: 5},
		{name: "unterminated character sequence", source: "nan(1", wantPos: 3},
		{name: "illegal character sequence", source: "nan(1-2)", wantPos: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.source)
			got, err := l.ScanNumber()
			if err != nil {
				t.Fatalf("Lexer.ScanNumber() error = %v", err)
			}
			if !math.IsNaN(got) {
				t.Errorf("Lexer.ScanNumber() = %v, want NaN", got)
			}
			if math.Signbit(got) != tt.wantNegative {
				t.Errorf("Lexer.ScanNumber() sign bit = %v, want %v", math.Signbit(got), tt.wantNegative)
			}
			if l.Pos() != tt.wantPos {
				t.Errorf("Lexer.Pos() = %d, want %d", l.Pos(), tt.wantPos)
			}
		})
	}
}

func TestLexer_EndMarker(t *testing.T) {
	l := New("1 \x00+2")

	var got []byte
	for b := l.Next(); b != EndMarker; b = l.Next() {
		got = append(got, b)
	}

	if string(got) != "1 " {
		t.Errorf("Lexer content = %q, want %q", got, "1 ")
	}
	if l.Peek() != EndMarker || l.Next() != EndMarker {
		t.Errorf("exhausted Lexer does not keep returning EndMarker")
	}
	if l.Pos() != 2 {
		t.Errorf("Lexer.Pos() = %d, want 2", l.Pos())
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		b           byte
		whitespace  bool
		numberStart bool
		operator    bool
	}{
		{' ', true, false, false},
		{'\v', true, false, false},
		{'\f', true, false, false},
		{'7', false, true, false},
		{'-', false, true, true},
		{'+', false, true, true},
		{'^', false, false, true},
		{'.', false, false, false},
		{'(', false, false, false},
		{0xe2, false, false, false},
	}

	for _, tt := range tests {
		if got := IsWhitespace(tt.b); got != tt.whitespace {
			t.Errorf("IsWhitespace(%q) = %v, want %v", tt.b, got, tt.whitespace)
		}
		if got := IsNumberStart(tt.b); got != tt.numberStart {
			t.Errorf("IsNumberStart(%q) = %v, want %v", tt.b, got, tt.numberStart)
		}
		if got := IsOperator(tt.b); got != tt.operator {
			t.Errorf("IsOperator(%q) = %v, want %v", tt.b, got, tt.operator)
		}
	}
}

func BenchmarkLexer_ScanNumber(b *testing.B) {
	src := "-12345.6789e-3"

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		l := New(src)
		_, _ = l.ScanNumber()
	}
}
