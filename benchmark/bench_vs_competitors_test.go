package benchmark_test

import (
	"io"
	"testing"

	"github.com/dzonerzy/go-dropt/dropt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"
)

// Each library parses the same flags; dropt and pflag reuse their table
// across iterations the way a program parses once, the command frameworks
// are rebuilt because they keep state between runs.

var simpleArgs = []string{"--port", "9000", "--verbose"}

func BenchmarkSimple_Dropt(b *testing.B) {
	var port int
	var verbose bool
	p := dropt.MustParser([]dropt.Option{
		{Short: 'p', Long: "port", ArgDescription: "PORT", Handler: dropt.Int(&port)},
		{Short: 'v', Long: "verbose", Handler: dropt.Bool(&verbose)},
	})
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(simpleArgs)
	}
}

func BenchmarkSimple_Pflag(b *testing.B) {
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntP("port", "p", 8080, "Server port")
	fs.BoolP("verbose", "v", false, "Verbose output")
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fs.Parse(simpleArgs)
	}
}

func BenchmarkSimple_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{Use: "bench", Run: func(*cobra.Command, []string) {}}
		cmd.Flags().IntP("port", "p", 8080, "Server port")
		cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		cmd.SetArgs(simpleArgs)
		_ = cmd.Execute()
	}
}

func BenchmarkSimple_Urfave(b *testing.B) {
	args := append([]string{"bench"}, simpleArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080},
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
			},
			Action: func(*cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

var manyArgs = []string{
	"--flag1", "test1",
	"--flag2=test2",
	"--flag3", "test3",
	"-p", "9000",
	"-vd",
	"--", "operand",
}

func BenchmarkManyFlags_Dropt(b *testing.B) {
	var s [5]string
	var port int
	var verbose, debug, quiet, force bool
	p := dropt.MustParser([]dropt.Option{
		{Long: "flag1", ArgDescription: "V", Handler: dropt.String(&s[0])},
		{Long: "flag2", ArgDescription: "V", Handler: dropt.String(&s[1])},
		{Long: "flag3", ArgDescription: "V", Handler: dropt.String(&s[2])},
		{Long: "flag4", ArgDescription: "V", Handler: dropt.String(&s[3])},
		{Long: "flag5", ArgDescription: "V", Handler: dropt.String(&s[4])},
		{Short: 'p', Long: "port", ArgDescription: "PORT", Handler: dropt.Int(&port)},
		{Short: 'v', Long: "verbose", Handler: dropt.Bool(&verbose)},
		{Short: 'd', Long: "debug", Handler: dropt.Bool(&debug)},
		{Short: 'q', Long: "quiet", Handler: dropt.Bool(&quiet)},
		{Short: 'f', Long: "force", Handler: dropt.Bool(&force)},
	})
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(manyArgs)
	}
}

func BenchmarkManyFlags_Pflag(b *testing.B) {
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, name := range []string{"flag1", "flag2", "flag3", "flag4", "flag5"} {
		fs.String(name, "", "")
	}
	fs.IntP("port", "p", 8080, "")
	fs.BoolP("verbose", "v", false, "")
	fs.BoolP("debug", "d", false, "")
	fs.BoolP("quiet", "q", false, "")
	fs.BoolP("force", "f", false, "")
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fs.Parse(manyArgs)
	}
}

func BenchmarkManyFlags_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cmd := &cobra.Command{Use: "bench", Run: func(*cobra.Command, []string) {}}
		f := cmd.Flags()
		for _, name := range []string{"flag1", "flag2", "flag3", "flag4", "flag5"} {
			f.String(name, "", "")
		}
		f.IntP("port", "p", 8080, "")
		f.BoolP("verbose", "v", false, "")
		f.BoolP("debug", "d", false, "")
		f.BoolP("quiet", "q", false, "")
		f.BoolP("force", "f", false, "")
		cmd.SetArgs(manyArgs)
		_ = cmd.Execute()
	}
}

func BenchmarkManyFlags_Urfave(b *testing.B) {
	// urfave/cli does not group short flags; spell them out.
	args := []string{
		"bench",
		"--flag1", "test1",
		"--flag2=test2",
		"--flag3", "test3",
		"-p", "9000",
		"-v", "-d",
		"--", "operand",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "flag1"},
				&cli.StringFlag{Name: "flag2"},
				&cli.StringFlag{Name: "flag3"},
				&cli.StringFlag{Name: "flag4"},
				&cli.StringFlag{Name: "flag5"},
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080},
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
				&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
				&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}},
				&cli.BoolFlag{Name: "force", Aliases: []string{"f"}},
			},
			Action: func(*cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

func BenchmarkUnknownFlag_Dropt(b *testing.B) {
	var verbose bool
	p := dropt.MustParser([]dropt.Option{
		{Short: 'v', Long: "verbose", Handler: dropt.Bool(&verbose)},
	})
	eh := dropt.NewErrorHandler().SuggestOptions(true)
	args := []string{"--verbsoe"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := p.Parse(args)
		_ = eh.Format(err, p.Options())
	}
}

func BenchmarkUnknownFlag_Pflag(b *testing.B) {
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolP("verbose", "v", false, "")
	args := []string{"--verbsoe"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := fs.Parse(args); err != nil {
			_ = err.Error()
		}
	}
}
