package main

import (
	"context"
	"flag"
	"log"
	"math/rand"

	"github.com/google/subcommands"

	"github.com/gradlet-ml/gradlet/engine"
	"github.com/gradlet-ml/gradlet/nn"
)

// TrainCommand trains a register-graph classifier on a synthetic
// two-blob dataset and logs loss and accuracy as it goes.
type TrainCommand struct {
	seed         int64
	epochs       int
	samples      int
	hidden       int
	learningRate float64
}

var _ subcommands.Command = (*TrainCommand)(nil)

func (*TrainCommand) Name() string {
	return "train"
}

func (*TrainCommand) Synopsis() string {
	return "Train a register-graph classifier on synthetic data"
}

func (*TrainCommand) Usage() string {
	return ``
}

func (c *TrainCommand) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.seed, "seed", 42, "Random seed for data and weight initialization")
	f.IntVar(&c.epochs, "epochs", 100, "Number of training epochs")
	f.IntVar(&c.samples, "samples", 100, "Number of training samples")
	f.IntVar(&c.hidden, "hidden", 8, "Width of each hidden register")
	f.Float64Var(&c.learningRate, "learning-rate", 0.05, "SGD step size")
}

func (c *TrainCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *TrainCommand) executeErr(ctx context.Context) error {
	rng := rand.New(rand.NewSource(c.seed))

	xs, ys := makeBlobs(rng, c.samples)
	log.Printf("Generated %d samples", len(xs))

	// A split-and-merge graph: the input feeds two parallel hidden
	// layers whose outputs are conjoined into a single score.
	model, err := nn.NewModel(rng, 2, []string{"h0", "h1"}, []nn.Step{
		{In: []string{"I"}, Width: c.hidden, Out: "h0"},
		{In: []string{"I"}, Width: c.hidden, Out: "h1"},
		{In: []string{"h0", "h1"}, Width: 1, Out: "O", Options: nn.Options{Linear: true}},
	})
	if err != nil {
		return err
	}
	log.Printf("Model has %d parameters", len(model.Parameters()))

	for epoch := 0; epoch < c.epochs; epoch++ {
		nn.ZeroGrad(model)

		total := engine.New(0)
		correct := 0
		for i, x := range xs {
			out, err := model.Forward(values(x))
			if err != nil {
				return err
			}
			score := out[0]

			// Hinge loss: relu(1 - y*score).
			margin := engine.New(1).Sub(score.Mul(engine.New(ys[i]))).Relu()
			total = total.Add(margin)

			if (score.Data > 0) == (ys[i] > 0) {
				correct++
			}
		}
		loss := total.Mul(engine.New(1 / float64(len(xs))))
		loss.Backward()

		for _, p := range model.Parameters() {
			p.Data -= c.learningRate * p.Grad
		}

		if epoch%10 == 0 || epoch == c.epochs-1 {
			log.Printf("epoch %3d: loss=%.4f accuracy=%.1f%%",
				epoch, loss.Data, 100*float64(correct)/float64(len(xs)))
		}
	}

	return nil
}

// values wraps a raw sample as engine leaves.
func values(x []float64) []*engine.Value {
	out := make([]*engine.Value, len(x))
	for i, v := range x {
		out[i] = engine.New(v)
	}
	return out
}

// makeBlobs draws n points from two Gaussian clusters, labeled -1 and +1.
func makeBlobs(rng *rand.Rand, n int) ([][]float64, []float64) {
	xs := make([][]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		label := 1.0
		cx, cy := 1.5, 1.5
		if i%2 == 0 {
			label = -1.0
			cx, cy = -1.5, -1.5
		}
		xs[i] = []float64{cx + rng.NormFloat64()*0.8, cy + rng.NormFloat64()*0.8}
		ys[i] = label
	}
	return xs, ys
}
