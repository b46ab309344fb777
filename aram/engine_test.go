package aram_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arams-go/arams/aram"
	"github.com/arams-go/arams/diag"
	"github.com/arams-go/arams/machine"
)

var factorial = []string{
	"load 1",
	"jzero return_one",
	"sub #1",
	"jzero return_one",
	"load 1",
	"store 2",
	"loop: load 1",
	"sub #1",
	"jzero break",
	"store 1",
	"mul 2",
	"store 2",
	"goto loop",
	"return_one: load #1",
	"end",
	"break: load 2",
	"end",
}

var _ = Describe("Engine", func() {
	Context("Factorial", func() {
		It("should compute 5!", func() {
			snap, diags, err := aram.Run(factorial, map[int]int64{1: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(BeEmpty())
			Expect(snap.Accumulator).To(Equal(int64(120)))
			Expect(snap.Registers).To(Equal(map[int]int64{1: 1, 2: 120}))
		})

		It("should return one for 0!", func() {
			snap, _, err := aram.Run(factorial, map[int]int64{1: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Accumulator).To(Equal(int64(1)))
		})

		It("should return one for 1!", func() {
			snap, _, err := aram.Run(factorial, map[int]int64{1: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.Accumulator).To(Equal(int64(1)))
			Expect(snap.Registers).To(Equal(map[int]int64{1: 1}))
		})

		It("should be deterministic", func() {
			first, _, err := aram.Run(factorial, map[int]int64{1: 7})
			Expect(err).NotTo(HaveOccurred())
			second, _, err := aram.Run(factorial, map[int]int64{1: 7})
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("should not modify the caller's registers", func() {
			registers := map[int]int64{1: 4, 9: 9}
			_, _, err := aram.Run(factorial, registers)
			Expect(err).NotTo(HaveOccurred())
			Expect(registers).To(Equal(map[int]int64{1: 4, 9: 9}))
		})
	})

	Context("Compile errors", func() {
		It("should reject a store into an immediate", func() {
			diags := aram.Check("store #3")
			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Line).To(Equal(1))

			snap, rdiags, err := aram.Run("store #3", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap).To(BeNil())
			Expect(rdiags).To(Equal(diags))
		})

		It("should report undefined labels", func() {
			diags := aram.Check("goto missing_label")
			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Line).To(Equal(1))
			Expect(diags[0].Message).To(ContainSubstring("undefined label"))
		})

		It("should report every error at once", func() {
			diags := aram.Check([]string{"load", "store #1", "frob", "goto nowhere"})
			Expect(diags).To(HaveLen(4))
			for n, d := range diags {
				Expect(d.Line).To(Equal(n + 1))
			}
		})

		It("should never execute a program with errors", func() {
			_, diags, err := aram.Run([]string{"div #0", "end", "end 1"}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(diags).To(HaveLen(1))
			Expect(diags[0].Line).To(Equal(3))
		})
	})

	Context("Labels", func() {
		It("should resolve forward and backward references alike", func() {
			forward, _, err := aram.Run([]string{"goto l", "l: load #4", "end"}, nil)
			Expect(err).NotTo(HaveOccurred())
			backward, _, err := aram.Run([]string{"l: load #4", "jzero l", "end"}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(forward).To(Equal(backward))
		})

		It("should be case sensitive", func() {
			Expect(aram.Check("Loop: goto loop\nend")).To(HaveLen(1))
			Expect(aram.Check("Loop: jzero Loop\nend")).To(BeEmpty())
		})
	})

	Context("Execution errors", func() {
		It("should fail on division by zero", func() {
			snap, diags, err := aram.Run("load #1\ndiv 5\nend", nil)
			Expect(snap).To(BeNil())
			Expect(diags).To(BeEmpty())
			Expect(err).To(MatchError(machine.ErrDivisionByZero))

			var exec *diag.ExecutionError
			Expect(err).To(BeAssignableToTypeOf(exec))
		})

		It("should fail without end", func() {
			_, _, err := aram.Run("load #1\nadd #2", nil)
			Expect(err).To(MatchError(machine.ErrMissingHalt))
		})

		It("should stop at the step limit", func() {
			_, _, err := aram.Run("l: goto l", nil, aram.WithMaxSteps(1000))
			Expect(err).To(MatchError(machine.ErrStepLimit))
		})
	})

	Context("Analysis", func() {
		It("should accept anything", func() {
			for _, source := range []string{"", "// only", "#$%^ ::: **", "\n\n\n"} {
				Expect(aram.Analyze(source)).To(HaveLen(len(aram.Lines(source))))
			}
		})

		It("should end every line but the last with a newline", func() {
			lines := aram.Analyze("load 1\nend")
			Expect(lines).To(HaveLen(2))
			Expect(lines[0][len(lines[0])-1].Kind).To(Equal("newline"))
			Expect(lines[1][len(lines[1])-1].Kind).To(Equal("end"))
		})
	})
})
