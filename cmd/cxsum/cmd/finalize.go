package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cxkit/crypto/hash"
	"github.com/cxkit/crypto/nvm"
)

var flagDiscard bool

// finalizeCmd represents the finalize command
var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Finalize a hashing session, print its digest and remove it",
	Run:   runFinalize,
}

func init() {
	rootCmd.AddCommand(finalizeCmd)

	finalizeCmd.Flags().StringVarP(&flagSession, "session", "n", "",
		"session name [required]")
	_ = finalizeCmd.MarkFlagRequired("session")
	finalizeCmd.Flags().BoolVar(&flagDiscard, "discard", false,
		"remove the session without printing a digest")
}

func runFinalize(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if flagDiscard {
		if err := store.Delete(flagSession); err != nil {
			log.Fatal().Err(err).Str("session", flagSession).Msg("could not remove session")
		}
		log.Info().Str("session", flagSession).Msg("session removed")
		return
	}

	sess, err := nvm.NewValue[session](store, flagSession).Get()
	if errors.Is(err, nvm.ErrNotFound) {
		log.Fatal().Str("session", flagSession).Msg("no such session")
	}
	if err != nil {
		log.Fatal().Err(err).Str("session", flagSession).Msg("could not read session")
	}

	h, err := hash.RestoreHasher(sess.Context)
	if err != nil {
		log.Fatal().Err(err).Str("session", flagSession).
			Msg("session context is corrupt, remove it with --discard")
	}

	fmt.Printf("%s  %s\n", h.SumHash(), flagSession)

	if err := store.Delete(flagSession); err != nil {
		log.Fatal().Err(err).Str("session", flagSession).Msg("could not remove session")
	}
}
