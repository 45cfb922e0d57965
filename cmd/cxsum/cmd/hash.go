package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/cxkit/crypto/hash"
)

var (
	flagAlgo       string
	flagSize       int
	flagKey        string
	flagCustomizer string
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash [file ...]",
	Short: "Compute one-shot digests of files or standard input",
	Run:   runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().StringVarP(&flagAlgo, "algo", "a", "sha3-256",
		"hashing algorithm (sha2, sha3, keccak and blake2b families, shake-128/256, cshake-128/256, kmac-128)")
	hashCmd.Flags().IntVarP(&flagSize, "size", "s", 0,
		"output size in bytes for the extendable-output algorithms")
	hashCmd.Flags().StringVar(&flagKey, "key", "",
		"hex encoded key for kmac-128")
	hashCmd.Flags().StringVar(&flagCustomizer, "customizer", "",
		"customization string for cshake and kmac")
}

func runHash(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		digest, err := hashReader(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("could not hash standard input")
		}
		fmt.Printf("%s  -\n", digest)
		return
	}

	var result *multierror.Error
	for _, name := range args {
		digest, err := hashFile(name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		fmt.Printf("%s  %s\n", digest, name)
	}
	if err := result.ErrorOrNil(); err != nil {
		log.Fatal().Err(err).Msg("could not hash all inputs")
	}
}

func hashFile(name string) (hash.Hash, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", name, err)
	}
	defer f.Close()

	digest, err := hashReader(f)
	if err != nil {
		return nil, fmt.Errorf("could not hash %s: %w", name, err)
	}
	return digest, nil
}

func hashReader(r io.Reader) (hash.Hash, error) {
	key, customizer := hashParams()
	h, err := newHasher(flagAlgo, flagSize, key, customizer)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	return h.SumHash(), nil
}
