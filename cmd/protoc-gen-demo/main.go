// Command protoc-gen-demo is a minimal protoc-plugin-shaped binary: it
// reads a CodeGeneratorRequest from stdin and writes a
// CodeGeneratorResponse to stdout, using this module's own wire codec
// for both. It does not generate real target-language source — this
// binary exists to exercise the plugin-I/O wire contract end to end, not
// to implement a code generator.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/op/go-logging"
	"github.com/urfave/cli"

	"github.com/jhump/protocodec/proto"
)

func main() {
	app := cli.NewApp()
	app.Name = "protoc-gen-demo"
	app.Usage = "read a CodeGeneratorRequest on stdin, write a CodeGeneratorResponse on stdout"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log-level",
			Value: "INFO",
			Usage: "CRITICAL, ERROR, WARNING, NOTICE, INFO, or DEBUG",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		// app.Action only returns an error for I/O failures reading
		// stdin or writing stdout, or for a response too large to
		// marshal; malformed request bytes are instead
		// reported inside a well-formed response, keeping exit status
		// zero for anything short of an actual I/O failure.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level, err := logging.LogLevel(c.String("log-level"))
	if err != nil {
		level = logging.INFO
	}
	setupLogging(level)

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("protoc-gen-demo: reading request: %w", err)
	}

	resp := buildResponse(input)

	out, err := proto.Marshal(resp)
	if err != nil {
		return fmt.Errorf("protoc-gen-demo: marshaling response: %w", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("protoc-gen-demo: writing response: %w", err)
	}
	return nil
}

// buildResponse never returns an error: any failure to understand the
// request becomes a response carrying an error string instead.
func buildResponse(input []byte) *codeGeneratorResponse {
	req := &codeGeneratorRequest{}
	if err := proto.Unmarshal(input, req); err != nil {
		msg := fmt.Sprintf("malformed CodeGeneratorRequest: %v", err)
		return &codeGeneratorResponse{Error: &msg}
	}

	params, err := parsePluginParams(req.Parameter)
	if err != nil {
		msg := err.Error()
		return &codeGeneratorResponse{Error: &msg}
	}

	if len(req.ProtoFile) == 0 {
		warn := color.New(color.FgHiYellow)
		warn.EnableColor()
		log.Warning(warn.Sprintf("request carried no proto_file entries"))
	}
	log.Infof("generating %d file(s), crate_name=%q", len(req.FileToGenerate), params.CrateName)

	resp := &codeGeneratorResponse{}
	for _, name := range req.FileToGenerate {
		content := fmt.Sprintf("// generated for %s (crate_name=%s, pub_fields=%v)\n", name, params.CrateName, params.PubFields)
		resp.File = append(resp.File, &generatedFile{Name: name + ".demo", Content: content})
	}
	return resp
}
