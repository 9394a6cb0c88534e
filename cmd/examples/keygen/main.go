// Package main demonstrates keypair generation on secp256k1
package main

import (
	"fmt"
	"os"

	"github.com/Caqil/ecckit/pkg/crypto/curve"
	"github.com/Caqil/ecckit/pkg/keypair"
	"github.com/Caqil/ecckit/pkg/logger"
)

func main() {
	log := logger.New(&logger.Config{Level: "info", Pretty: true})

	c, err := curve.NewCurve(curve.Secp256k1)
	if err != nil {
		log.With().Err(err).Logger().Fatal("failed to create curve")
	}

	kp, err := keypair.New(c)
	if err != nil {
		log.With().Err(err).Logger().Fatal("failed to create keypair holder")
	}

	if err := kp.Generate(); err != nil {
		log.With().Err(err).Logger().Fatal("keypair generation failed")
	}

	secret, err := kp.SecretKey()
	if err != nil {
		log.With().Err(err).Logger().Fatal("failed to read secret key")
	}

	public, err := kp.PublicKey()
	if err != nil {
		log.With().Err(err).Logger().Fatal("failed to read public key")
	}

	log.With().
		Str("curve", c.Name()).
		Str("secret", logger.RedactSecret(secret.Text(16))).
		Logger().
		Info("generated keypair")

	fmt.Fprintf(os.Stdout, "public key:\n  x = %064x\n  y = %064x\n", public.X, public.Y)

	// Wipe the secret before exit
	kp.Destroy()
}
