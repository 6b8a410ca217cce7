// Command bitsig signs a file with a WIF private key and verifies a base64
// DER signature against a Bitcoin address.
//
//	bitsig sign <file> <WIF>
//	bitsig verify <file> <address> <signature>
//
// The message digest is the double SHA-256 of the file contents. Exit code
// is 0 on success and 1 on bad arguments, unreadable files or a failed
// verification.
package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/bitsig/bitsig"
	cli "gopkg.in/urfave/cli.v1"
)

func main() {
	app := cli.NewApp()
	app.Name = "bitsig"
	app.Usage = "sign and verify files with secp256k1 Bitcoin keys"
	app.Commands = []cli.Command{
		{
			Name:      "sign",
			Usage:     "sign a file with a WIF private key",
			ArgsUsage: "<file> <WIF>",
			Action:    signCommand,
		},
		{
			Name:      "verify",
			Usage:     "verify a base64 DER signature against an address",
			ArgsUsage: "<file> <address> <signature>",
			Action:    verifyCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// fileDigest reads the file and returns its double SHA-256 as an integer.
func fileDigest(path string) (*big.Int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s file is not available", path)
	}
	return new(big.Int).SetBytes(bitsig.Hash256(data)), nil
}

func signCommand(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.NewExitError("usage: bitsig sign <file> <WIF>", 1)
	}
	digest, err := fileDigest(ctx.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	key, err := bitsig.NewPrivateKeyFromWIF(bitsig.Secp256k1(), ctx.Args().Get(1))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	sig, err := key.Sign(digest)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Printf("Signature = %s\n", base64.StdEncoding.EncodeToString(sig.Serialize()))
	return nil
}

func verifyCommand(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		return cli.NewExitError("usage: bitsig verify <file> <address> <signature>", 1)
	}
	digest, err := fileDigest(ctx.Args().Get(0))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	der, err := base64.StdEncoding.DecodeString(ctx.Args().Get(2))
	if err != nil {
		return cli.NewExitError("signature is not valid base64", 1)
	}
	sig, err := bitsig.ParseDERSignature(der)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	ok, err := sig.VerifyAddress(bitsig.Secp256k1(), digest, ctx.Args().Get(1))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if !ok {
		return cli.NewExitError("Signature verification failed", 1)
	}
	fmt.Println("Signature verification passed")
	return nil
}
