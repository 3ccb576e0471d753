package cli_test

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelbench/internal/cli"
	"github.com/san-kum/mandelbench/internal/config"
)

var _ = Describe("NewCommand", func() {
	var out *bytes.Buffer

	execute := func(preset string, args ...string) error {
		cmd := cli.NewCommand("mandelbench", preset)
		cmd.SetOut(out)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(append([]string{}, args...))
		return cmd.Execute()
	}

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	DescribeTable("prints exactly one timing line",
		func(preset string) {
			Expect(execute(preset)).To(Succeed())
			Expect(out.String()).To(MatchRegexp(`^GO Benchmark: \d+\.\d{5}s\n$`))
		},
		Entry("line preset", "line"),
		Entry("sum preset", "sum"),
		Entry("display preset", "display"),
	)

	It("rejects arguments", func() {
		Expect(execute("line", "extra")).To(HaveOccurred())
		Expect(out.String()).NotTo(ContainSubstring("Benchmark"))
	})

	It("fails on an unknown preset", func() {
		err := execute("nonexistent")
		Expect(err).To(MatchError(config.ErrUnknownPreset))
		Expect(out.String()).NotTo(ContainSubstring("Benchmark"))
	})
})
