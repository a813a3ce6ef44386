package lead

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTraits(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"works at (ig/mindmusclesg) / traveling with fam", []string{"works at (ig/mindmusclesg)", "traveling with fam"}},
		{"stylish jacket", []string{"stylish jacket"}},
		{"traveling w/ fam / cool jacket", []string{"traveling w/ fam", "cool jacket"}},
		{"24/7 gym rat / loves coffee", []string{"24/7 gym rat", "loves coffee"}},
		{"a/b/c", []string{"a/b/c"}},
		{"gym rat /loves coffee", []string{"gym rat /loves coffee"}},
		{"gym rat\t/\tloves coffee", []string{"gym rat", "loves coffee"}},
		{"/ stylish jacket /", []string{"stylish jacket"}},
		{" / stylish jacket / ", []string{"stylish jacket"}},
		{"content creator (tt/@gibsaw)", []string{"content creator (tt/@gibsaw)"}},
		{"", nil},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, SplitTraits(tc.in)); diff != "" {
			t.Fatalf("SplitTraits(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseSingle(t *testing.T) {
	l, err := ParseSingle("Henry\nworks at (ig/mindmusclesg) / traveling with fam")
	require.NoError(t, err)
	assert.Equal(t, Lead{Name: "Henry", FirstTrait: "works at (ig/mindmusclesg)", SecondTrait: "traveling with fam"}, l)

	l, err = ParseSingle("\nstylish jacket\n")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, l.Name)
	assert.Equal(t, "stylish jacket", l.FirstTrait)
	assert.Equal(t, "stylish jacket", l.Second())

	l, err = ParseSingle("Henry\ntraveling w/ fam / cool jacket")
	require.NoError(t, err)
	assert.Equal(t, Lead{Name: "Henry", FirstTrait: "traveling w/ fam", SecondTrait: "cool jacket"}, l)

	l, err = ParseSingle("Ann\n24/7 gym rat / loves coffee")
	require.NoError(t, err)
	assert.Equal(t, Lead{Name: "Ann", FirstTrait: "24/7 gym rat", SecondTrait: "loves coffee"}, l)

	l, err = ParseSingle("Ana")
	require.NoError(t, err)
	assert.Equal(t, Lead{Name: "Ana"}, l)

	_, err = ParseSingle(" \n ")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseSingleMatchesBlock(t *testing.T) {
	for _, in := range []string{
		"Wei Ling\nstylish jacket\nloves noodles",
		"Henry\nworks at (ig/mindmusclesg) / traveling with fam\nignored third line",
		"Raj\n24/7 gym rat",
	} {
		single, err := ParseSingle(in)
		require.NoError(t, err, in)
		leads, err := Parse(in)
		require.NoError(t, err, in)
		require.Len(t, leads, 1, in)
		assert.Equal(t, leads[0], single, in)
	}

	l, err := ParseSingle("Wei Ling\nstylish jacket\nloves noodles")
	require.NoError(t, err)
	assert.Equal(t, "loves noodles", l.SecondTrait)
}

func TestParseBlocks(t *testing.T) {
	input := "Henry\nworks at (ig/mindmusclesg) / traveling with fam\n\n" +
		"Wei Ling\r\nstylish jacket\r\nloves noodles\r\n   \r\n" +
		"Raj\nsoftware engineer\n\n\n"
	leads, err := Parse(input)
	require.NoError(t, err)
	want := []Lead{
		{Name: "Henry", FirstTrait: "works at (ig/mindmusclesg)", SecondTrait: "traveling with fam"},
		{Name: "Wei Ling", FirstTrait: "stylish jacket", SecondTrait: "loves noodles"},
		{Name: "Raj", FirstTrait: "software engineer"},
	}
	if diff := cmp.Diff(want, leads); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRows(t *testing.T) {
	input := "Henry\tworks at (ig/mindmusclesg)\ttraveling with fam\n" +
		"Wei Ling\tstylish jacket / loves noodles\n" +
		"\t\n" +
		"Raj\tsoftware engineer\n"
	leads, err := Parse(input)
	require.NoError(t, err)
	want := []Lead{
		{Name: "Henry", FirstTrait: "works at (ig/mindmusclesg)", SecondTrait: "traveling with fam"},
		{Name: "Wei Ling", FirstTrait: "stylish jacket", SecondTrait: "loves noodles"},
		{Name: "Raj", FirstTrait: "software engineer"},
	}
	if diff := cmp.Diff(want, leads); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("   \n\n")
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Parse("\t/\n\t / \t\n")
	require.ErrorIs(t, err, ErrNoLeads)
}

func TestFormatRoundTrip(t *testing.T) {
	out, err := Format("Henry\tworks at (ig/mindmusclesg)\ttraveling with fam\nRaj\tsoftware engineer\n")
	require.NoError(t, err)
	assert.Equal(t, "Henry\nworks at (ig/mindmusclesg)\ntraveling with fam\n\nRaj\nsoftware engineer\n", out)

	leads, err := Parse(out)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "traveling with fam", leads[0].SecondTrait)
	assert.Equal(t, "software engineer", leads[1].Second())
}
