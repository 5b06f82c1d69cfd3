// Command u256 encodes, decodes and validates bounded 256-bit integers.
//
//	u256 encode 0x10      -> 0x8110
//	u256 decode 0x8110    -> 16
//	u256 check 1.5        -> false (exit status 1)
//	u256 transfer 0xc6..  -> id, from, to, amount and nonce of an rlp transfer body
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"gitlab.com/zlyzol/uledger/internal/common"
	"gitlab.com/zlyzol/uledger/internal/models"
)

var errInvalid = errors.New("invalid")

func main() {
	hexOut := flag.BoolP("hex", "x", false, "print decoded values in hexadecimal")
	verbose := flag.BoolP("verbose", "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: u256 [flags] encode|decode|check|transfer <value>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	err := run(os.Stdout, flag.Arg(0), flag.Arg(1), *hexOut)
	if err == errInvalid {
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Msg(flag.Arg(0))
		os.Exit(1)
	}
}

func run(w io.Writer, cmd, arg string, hexOut bool) error {
	switch cmd {
	case "encode":
		u, err := common.NewU256FromString(arg)
		if err != nil {
			return err
		}
		enc := u.EncodeBytes()
		log.Debug().Str("value", u.String()).Int("len", len(enc)).Msg("encoded")
		fmt.Fprintln(w, hexutil.Encode(enc))
	case "decode":
		raw, err := hexutil.Decode(arg)
		if err != nil {
			return errors.Wrap(err, "input must be 0x prefixed hex")
		}
		u, err := common.DecodeU256(raw)
		if err != nil {
			return err
		}
		if hexOut {
			fmt.Fprintln(w, u.Hex())
		} else {
			fmt.Fprintln(w, u.String())
		}
	case "check":
		ok := common.CheckU256(common.StringInput(arg))
		fmt.Fprintln(w, ok)
		if !ok {
			return errInvalid
		}
	case "transfer":
		raw, err := hexutil.Decode(arg)
		if err != nil {
			return errors.Wrap(err, "input must be 0x prefixed hex")
		}
		from, to, amount, nonce, err := models.DecodeTransferBody(raw)
		if err != nil {
			return err
		}
		text := common.U256.String
		if hexOut {
			text = common.U256.Hex
		}
		fmt.Fprintf(w, "id %s\nfrom %s\nto %s\namount %s\nnonce %s\n",
			crypto.Keccak256Hash(raw).Hex(), from, to, text(amount), text(nonce))
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
	return nil
}
