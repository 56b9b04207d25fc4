package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/anacrolix/log"
	"github.com/go-quicktest/qt"

	"github.com/anacrolix/peerid"
)

func run(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer
	err := mainErr(args, &buf, log.Default.WithNames("peerid", "test"))
	return buf.String(), err
}

func TestSafeCmd(t *testing.T) {
	out, err := run(t, "safe", "--", "-TR0000-%2a%00%01d7xkqq04n", "-TR0072-abvd7xkqq04n")
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(out, "-TR0000-???d7xkqq04n\n-TR0072-abvd7xkqq04n\n"))
}

func TestHexCmd(t *testing.T) {
	out, err := run(t, "--encoding", "raw", "hex", "--", "-TR0072-abvd7xkqq04n")
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(out, "-TR0072-6162766437786b717130346e\n"))

	out, err = run(t, "--encoding", "hex", "hex", "--full", "2d5452303037322d6162766437786b717130346e")
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(out, "2d5452303037322d6162766437786b717130346e\n"))
}

func TestBadLength(t *testing.T) {
	_, err := run(t, "safe", "--", "-TR0000-")
	var lenErr peerid.LengthError
	qt.Assert(t, qt.ErrorAs(err, &lenErr))
	qt.Check(t, qt.Equals(lenErr.Length, 8))
}

func TestDecodeArg(t *testing.T) {
	_, err := decodeArg("x", "base64")
	qt.Check(t, qt.ErrorMatches(err, `unknown encoding "base64"`))
	_, err = decodeArg("%zz", "url")
	qt.Check(t, qt.IsNotNil(err))
	id, err := decodeArg("-TR0072-abvd7xkqq04n", "raw")
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(id.Safe(), "-TR0072-abvd7xkqq04n"))
}

func TestGenerateCmd(t *testing.T) {
	out, err := run(t, "generate", "--alnum", "--client", "LT", "--client-version", "2.0.11", "--count", "3")
	qt.Assert(t, qt.IsNil(err))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	qt.Assert(t, qt.HasLen(lines, 3))
	for _, l := range lines {
		qt.Check(t, qt.HasLen(l, peerid.Size))
		qt.Check(t, qt.IsTrue(strings.HasPrefix(l, "-LT20B0-")))
	}
}

func TestGeneratePrefixFromEnv(t *testing.T) {
	t.Setenv("PEERID_PREFIX", "-XX1234-")
	out, err := run(t, "generate")
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.IsTrue(strings.HasPrefix(out, "-XX1234-")))
}

func TestClientPrefix(t *testing.T) {
	_, err := clientPrefix("LTX", "1")
	qt.Check(t, qt.IsNotNil(err))
	_, err = clientPrefix("LT", "1.2.3.4.5")
	qt.Check(t, qt.IsNotNil(err))
	_, err = clientPrefix("LT", "1.x")
	qt.Check(t, qt.IsNotNil(err))
	p, err := clientPrefix("qB", "4.6.5")
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(p, "-qB4650-"))
}

func outputLines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestGenerateOutputDecodes(t *testing.T) {
	for _, encoding := range []string{"url", "hex"} {
		out, err := run(t, "--encoding", encoding, "generate", "--count", "50")
		qt.Assert(t, qt.IsNil(err))
		lines := outputLines(out)
		qt.Assert(t, qt.HasLen(lines, 50))
		for _, l := range lines {
			id, err := decodeArg(l, encoding)
			qt.Assert(t, qt.IsNil(err), qt.Commentf("%q", l))
			qt.Check(t, qt.Equals(id.AsString()[:8], peerid.DefaultPrefix))
		}
	}
}

func TestGenerateThenHex(t *testing.T) {
	out, err := run(t, "generate", "--prefix", "-XX0000-")
	qt.Assert(t, qt.IsNil(err))
	id, err := decodeArg(strings.TrimSuffix(out, "\n"), "url")
	qt.Assert(t, qt.IsNil(err))
	out, err = run(t, "hex", "--", strings.TrimSuffix(out, "\n"))
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(out, id.Bep20String()+"\n"))
}

func TestEncodeArg(t *testing.T) {
	id := peerid.PeerID([]byte("-TR0000-*\x00\x01d7xkq q04"))
	for _, encoding := range []string{"raw", "hex", "url"} {
		s, err := encodeArg(id, encoding)
		qt.Assert(t, qt.IsNil(err))
		back, err := decodeArg(s, encoding)
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.Equals(back, id))
	}
	_, err := encodeArg(id, "base64")
	qt.Check(t, qt.IsNotNil(err))
}

func TestDumpFlag(t *testing.T) {
	out, err := run(t, "--dump", "safe", "--", "-TR0000-%2a%00%01d7xkqq04n")
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.StringContains(out, "([20]uint8)"))
	qt.Check(t, qt.StringContains(out, "2d 54 52 30 30 30 30 2d"))
	qt.Check(t, qt.IsTrue(strings.HasSuffix(out, "\n-TR0000-???d7xkqq04n\n")))
}

func TestDebugFlag(t *testing.T) {
	// Repeated runs each build their own filtered logger.
	for i := 0; i < 3; i++ {
		out, err := run(t, "--debug", "safe", "--", "-TR0072-abvd7xkqq04n")
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.Equals(out, "-TR0072-abvd7xkqq04n\n"))
		out, err = run(t, "--debug", "generate", "--alnum")
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.HasLen(out, peerid.Size+1))
	}
}

func TestVersionFlagIsNotClientVersion(t *testing.T) {
	_, err := run(t, "generate", "--client", "LT", "--version", "2.0.11")
	qt.Check(t, qt.IsNotNil(err))
}
