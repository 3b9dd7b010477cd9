package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// signatureCatalogCmd summarises the preserved files of an object
var signatureCatalogCmd = &cobra.Command{
	Use:   "signature-catalog <druid>",
	Short: "Print the preservation signature catalog of an object",
	Args:  cobra.ExactArgs(1),
	RunE:  runSignatureCatalog,
}

func init() {
	rootCmd.AddCommand(signatureCatalogCmd)
}

func runSignatureCatalog(cmd *cobra.Command, args []string) error {
	catalog, err := client.Object(args[0]).SDR().SignatureCatalog(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if catalog.Empty() {
		fmt.Fprintf(out, "%s has not been preserved\n", args[0])
		return nil
	}

	fmt.Fprintf(out, "%s version %d: %d files, %d bytes\n",
		catalog.ObjectID, catalog.VersionID, catalog.FileCount, catalog.ByteCount)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range catalog.Entries {
		fmt.Fprintf(w, "v%d\t%s\t%d\t%s\n", e.OriginalVersion, e.StoragePath, e.Signature.Size, e.Signature.MD5)
	}
	return w.Flush()
}
