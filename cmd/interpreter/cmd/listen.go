package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saghm/pallang/netsrv"
)

var listenAddr string

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Serve programs over TCP, one per connection",
	Long: `Bind a TCP address and run each connection's full body as one
program, writing its output back to the same connection.`,
	RunE: func(c *cobra.Command, args []string) error {
		return netsrv.New(listenAddr).ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().StringVar(&listenAddr, "addr", "localhost:7777", "address to listen on")
}
