package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cxkit/crypto/hash"
	"github.com/cxkit/crypto/nvm"
)

// sessionsCmd represents the sessions command
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List persisted hashing sessions",
	Run:   runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	names, err := store.List()
	if err != nil {
		log.Fatal().Err(err).Msg("could not list sessions")
	}

	for _, name := range names {
		sess, err := nvm.NewValue[session](store, name).Get()
		if err != nil {
			fmt.Printf("%s  (unreadable)\n", name)
			continue
		}
		status := "ok"
		if !hash.IsValidSHA3Context(sess.Context) && !hash.IsValidShakeContext(sess.Context) {
			status = "corrupt context"
		}
		fmt.Printf("%s  %s  %d bytes  %s  %s\n",
			name, sess.Algo, sess.Absorbed, sess.Created.Format(time.RFC3339), status)
	}
}
