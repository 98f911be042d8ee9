package gibberish

import "testing"

var BenchIntResult int

var miscChineseAlpha = NewAlphabet([]rune("的一是不了人我在有他这为之大来以个中上们到说国和地也子时道出而要于就下得可你年生自会那后能对着事其里所去行过家十用发天如然作方成者多日都三小军二无同么经法当起与好看学进种将还分此心前面又定见只主没公从"))

func TestAlphabetFind(t *testing.T) {
	if ASCIILetters.Len() != 52 {
		t.Fatal(ASCIILetters.Len())
	}
	if ASCIIAlnum.Len() != 62 {
		t.Fatal(ASCIIAlnum.Len())
	}
	if ASCIILetters.FindRune('a') != 0 || ASCIILetters.FindRune('Z') != 51 {
		t.Fatal()
	}
	if ASCIILetters.Contains('1') || !ASCIIAlnum.Contains('1') {
		t.Fatal()
	}
	if ASCIIAlnum.Contains(' ') || ASCIIAlnum.Contains('é') || ASCIIAlnum.Contains(-1) {
		t.Fatal()
	}
	if miscChineseAlpha.FindRune('的') != 0 || miscChineseAlpha.FindRune('a') != -1 {
		t.Fatal()
	}
	if ASCIILetters.FindByte(0xe9) != -1 {
		t.Fatal()
	}
}

func TestAlphabetDuplicates(t *testing.T) {
	al := NewAlphabet([]rune("abca道道"))
	if al.Len() != 4 {
		t.Fatal(al.Len())
	}
	if al.FindRune('道') != 3 {
		t.Fatal(al.FindRune('道'))
	}
	runes := al.Runes()
	runes[0] = 'z'
	if al.FindRune('a') != 0 || al.Contains('z') {
		t.Fatal("Runes must return a copy")
	}
}

func TestVowels(t *testing.T) {
	for _, r := range "aeiouAEIOU" {
		if !Vowels.Contains(r) {
			t.Fatal(string(r))
		}
	}
	for _, r := range "yYbz" {
		if Vowels.Contains(r) {
			t.Fatal(string(r))
		}
	}
}

func BenchmarkAlphabetFindRuneASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = ASCIILetters.FindRune('a')
	}
}

func BenchmarkAlphabetFindByteASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = ASCIILetters.FindByte('a')
	}
}

func BenchmarkAlphabetFindRuneWide(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = miscChineseAlpha.FindRune('道')
	}
}
