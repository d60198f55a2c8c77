// Command hyperlinks decodes a hypermedia document and prints its links.
//
// Usage:
//
//	hyperlinks [file] [--format json|xml|yaml|msgpack|bson] [--root name] [--rel rel]
//
// The document is read from file, or from stdin when file is omitted or "-".
// Every link is printed in RFC 8288 header form, one per line. With --rel only
// the matching href is printed, and a missing link is an error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zoobzio/hypermedia"
	"github.com/zoobzio/hypermedia/bson"
	"github.com/zoobzio/hypermedia/json"
	"github.com/zoobzio/hypermedia/msgpack"
	"github.com/zoobzio/hypermedia/xml"
	"github.com/zoobzio/hypermedia/yaml"
)

// document accepts any resource and keeps only its links.
type document struct {
	hypermedia.Resource `yaml:",inline" msgpack:",inline" bson:",inline"`
}

var codecs = map[string]func() hypermedia.WrappingCodec{
	"json":    json.New,
	"xml":     xml.New,
	"yaml":    yaml.New,
	"msgpack": msgpack.New,
	"bson":    bson.New,
}

// errNoLink is returned when --rel names a link the document does not carry.
var errNoLink = errors.New("no such link")

// formatFlag is a pflag.Value restricted to the supported codec names.
type formatFlag string

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(value string) error {
	value = strings.ToLower(value)
	if _, ok := codecs[value]; !ok {
		return fmt.Errorf("unknown format %q (supported: %s)", value, strings.Join(formatNames(), ", "))
	}
	*f = formatFlag(value)
	return nil
}

func (f *formatFlag) Type() string { return "format" }

func formatNames() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type options struct {
	format formatFlag
	root   string
	rel    string
}

func newRootCmd() *cobra.Command {
	opts := &options{format: "json"}

	cmd := &cobra.Command{
		Use:   "hyperlinks [file]",
		Short: "Print the links of a hypermedia document",
		Long: `Decode a document in any supported format and print its links.

Examples:
  hyperlinks doc.json                         # List every link
  hyperlinks -f xml --root bookmarks doc.xml  # Document rooted at <bookmarks>
  curl -s $URL | hyperlinks --rel next        # Print the next href`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().VarP(&opts.format, "format", "f", "document format ("+strings.Join(formatNames(), "|")+")")
	cmd.Flags().StringVar(&opts.root, "root", "", "root key or element the document is wrapped in")
	cmd.Flags().StringVarP(&opts.rel, "rel", "r", "", "print only the href of this relation")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	data, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var repOpts []hypermedia.Option
	if opts.root != "" {
		repOpts = append(repOpts, hypermedia.WithWrap(opts.root))
	}

	rep, err := hypermedia.NewRepresenter[document](codecs[string(opts.format)](), repOpts...)
	if err != nil {
		return fmt.Errorf("failed to create representer: %w", err)
	}

	doc, err := rep.Deserialize(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.rel != "" {
		href, ok := doc.Links.Lookup(opts.rel)
		if !ok {
			return fmt.Errorf("%w: %q", errNoLink, opts.rel)
		}
		_, err := fmt.Fprintln(out, href)
		return err
	}

	for link := range doc.Links.All() {
		if _, err := fmt.Fprintln(out, link); err != nil {
			return err
		}
	}
	return nil
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
