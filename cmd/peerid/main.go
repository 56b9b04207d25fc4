// Renders and generates BitTorrent peer IDs.
//
// Example run:
// $ peerid safe -- '-TR0000-%2a%00%01d7xkqq04n'
// -TR0000-???d7xkqq04n
// $ peerid hex -- '-TR0000-%2a%00%01d7xkqq04n'
// -TR0000-2a00016437786b717130346e
// $ peerid generate --alnum --client LT --client-version 2.0.11.0
// -LT20B0-Yp0rG2sJxW7c
// $ peerid --encoding hex generate
// 2d4754303030332d8e1f0bd2c45a7703e9b16f28
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"
	"github.com/davecgh/go-spew/spew"

	"github.com/anacrolix/peerid"
)

type cliFlags struct {
	Debug    bool   `help:"log each decoded peer id"`
	Dump     bool   `help:"spew each decoded peer id"`
	Encoding string `default:"url" help:"how peer id arguments are encoded: url, hex or raw"`

	*SafeCmd     `arg:"subcommand:safe" help:"print the log-safe rendering"`
	*HexCmd      `arg:"subcommand:hex" help:"print the BEP 20 hex rendering"`
	*GenerateCmd `arg:"subcommand:generate" help:"generate new peer ids"`
}

type SafeCmd struct {
	PeerIds []string `arg:"positional,required"`
}

type HexCmd struct {
	Full    bool     `help:"hex the prefix too"`
	PeerIds []string `arg:"positional,required"`
}

type GenerateCmd struct {
	Prefix string `arg:"env:PEERID_PREFIX" default:"-GT0003-"`
	Client string `help:"two letter client code, overrides --prefix"`
	// go-arg reserves --version.
	ClientVersion string `arg:"--client-version" default:"0.0.0.0" help:"dotted client version used with --client"`
	Count         int    `default:"1"`
	Alnum         bool   `help:"only use [0-9a-zA-Z] after the prefix"`
}

func main() {
	if err := mainErr(os.Args[1:], os.Stdout, log.Default.WithNames("peerid")); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func mainErr(args []string, w io.Writer, logger log.Logger) error {
	var flags cliFlags
	p, err := arg.NewParser(arg.Config{Program: "peerid"}, &flags)
	if err != nil {
		return err
	}
	err = p.Parse(args)
	switch err {
	case nil:
	case arg.ErrHelp:
		p.WriteHelp(w)
		return nil
	default:
		return err
	}
	if flags.Debug {
		logger = logger.FilterLevel(log.Debug)
	}
	switch {
	case flags.SafeCmd != nil:
		return eachPeerId(flags, flags.SafeCmd.PeerIds, w, logger, func(id peerid.PeerID) string {
			return id.Safe()
		})
	case flags.HexCmd != nil:
		return eachPeerId(flags, flags.HexCmd.PeerIds, w, logger, func(id peerid.PeerID) string {
			if flags.HexCmd.Full {
				return id.HexString()
			}
			return id.Bep20String()
		})
	case flags.GenerateCmd != nil:
		return generate(*flags.GenerateCmd, flags.Encoding, w, logger)
	default:
		p.WriteUsage(w)
		return fmt.Errorf("command required")
	}
}

func eachPeerId(flags cliFlags, args []string, w io.Writer, logger log.Logger, render func(peerid.PeerID) string) error {
	for _, a := range args {
		id, err := decodeArg(a, flags.Encoding)
		if err != nil {
			return fmt.Errorf("decoding %q: %w", a, err)
		}
		logger.Levelf(log.Debug, "decoded %q to %v", a, id.Bep20String())
		if flags.Dump {
			spew.Fdump(w, id.Array())
		}
		fmt.Fprintln(w, render(id))
	}
	return nil
}

// Prints each ID in the form the other subcommands read back with the same --encoding.
func generate(cmd GenerateCmd, encoding string, w io.Writer, logger log.Logger) error {
	prefix := cmd.Prefix
	if cmd.Client != "" {
		var err error
		prefix, err = clientPrefix(cmd.Client, cmd.ClientVersion)
		if err != nil {
			return err
		}
	}
	gen := peerid.Generate
	if cmd.Alnum {
		gen = peerid.GenerateAlnum
	}
	for i := 0; i < cmd.Count; i++ {
		id, err := gen(prefix)
		if err != nil {
			return fmt.Errorf("generating peer id: %w", err)
		}
		logger.Levelf(log.Debug, "generated %v", id.Bep20String())
		s, err := encodeArg(id, encoding)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
	}
	return nil
}

func clientPrefix(client, version string) (string, error) {
	if len(client) != 2 {
		return "", fmt.Errorf("client code %q must be two characters", client)
	}
	var nums [4]int
	parts := strings.Split(version, ".")
	if len(parts) > len(nums) {
		return "", fmt.Errorf("version %q has more than %d parts", version, len(nums))
	}
	for i, s := range parts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("parsing version %q: %w", version, err)
		}
		nums[i] = n
	}
	return peerid.Fingerprint(client, nums[0], nums[1], nums[2], nums[3])
}
