package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cxkit/crypto/hash"
	"github.com/cxkit/crypto/nvm"
)

var flagSession string

// absorbCmd represents the absorb command
var absorbCmd = &cobra.Command{
	Use:   "absorb [file ...]",
	Short: "Feed files or standard input into a resumable hashing session",
	Long: `Absorb feeds data into a named hashing session and persists the updated
sponge context, so hashing a long input can be spread over invocations.
The session is created on first use from --algo and --size; only the
sponge algorithms can be persisted.`,
	Run: runAbsorb,
}

func init() {
	rootCmd.AddCommand(absorbCmd)

	absorbCmd.Flags().StringVarP(&flagSession, "session", "n", "",
		"session name [required]")
	_ = absorbCmd.MarkFlagRequired("session")
	absorbCmd.Flags().StringVarP(&flagAlgo, "algo", "a", "sha3-256",
		"hashing algorithm for a new session (sha3 and keccak families, shake-128/256, cshake-128/256, kmac-128)")
	absorbCmd.Flags().IntVarP(&flagSize, "size", "s", 0,
		"output size in bytes for the extendable-output algorithms")
	absorbCmd.Flags().StringVar(&flagKey, "key", "",
		"hex encoded key for kmac-128")
	absorbCmd.Flags().StringVar(&flagCustomizer, "customizer", "",
		"customization string for cshake and kmac")
}

func runAbsorb(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	sessions := nvm.NewValue[session](store, flagSession)

	var h hash.Hasher
	sess, err := sessions.Get()
	switch {
	case err == nil:
		h, err = hash.RestoreHasher(sess.Context)
		if err != nil {
			log.Fatal().Err(err).Str("session", flagSession).
				Msg("session context is corrupt, remove it with finalize --discard")
		}
	case errors.Is(err, nvm.ErrNotFound):
		key, customizer := hashParams()
		h, err = newHasher(flagAlgo, flagSize, key, customizer)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create session")
		}
		// only the sponge algorithms serialize, reject the rest up front
		if _, err := hash.MarshalHasher(h); err != nil {
			log.Fatal().Err(err).Msg("algorithm cannot be persisted")
		}
		sess = session{Algo: flagAlgo, Size: h.Size(), Created: time.Now()}
	default:
		log.Fatal().Err(err).Str("session", flagSession).Msg("could not read session")
	}

	n, err := absorbInputs(h, args)
	if err != nil {
		log.Fatal().Err(err).Msg("could not absorb input")
	}

	ctx, err := hash.MarshalHasher(h)
	if err != nil {
		log.Fatal().Err(err).Msg("could not serialize the sponge context")
	}
	sess.Context = ctx
	sess.Absorbed += n

	if err := sessions.Set(sess); err != nil {
		log.Fatal().Err(err).Str("session", flagSession).Msg("could not save session")
	}

	log.Info().Str("session", flagSession).Str("algo", sess.Algo).
		Uint64("absorbed", sess.Absorbed).Msg("session saved")
}

func absorbInputs(h hash.Hasher, args []string) (uint64, error) {
	if len(args) == 0 {
		n, err := io.Copy(h, os.Stdin)
		return uint64(n), err
	}

	var total uint64
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return total, fmt.Errorf("could not open %s: %w", name, err)
		}
		n, err := io.Copy(h, f)
		f.Close()
		total += uint64(n)
		if err != nil {
			return total, fmt.Errorf("could not read %s: %w", name, err)
		}
	}
	return total, nil
}
