package pong_test

import (
	"math"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/waitpong/internal/pong"
)

var _ = Describe("Step", func() {
	var (
		p   pong.Params
		s   pong.State
		rng *rand.Rand
	)

	BeforeEach(func() {
		p = pong.DefaultParams()
		s = pong.NewState(p)
		rng = rand.New(rand.NewSource(7))
	})

	It("moves the ball by one reference frame without collisions", func() {
		ev := pong.Step(&s, p, pong.TimeScale(16700*time.Microsecond), rng)

		Expect(s.BallX).To(BeNumerically("~", p.Width/2+4, 0.05))
		Expect(s.BallY).To(BeNumerically("~", p.Height/2+4, 0.05))
		Expect(s.BallVX).To(Equal(4.0))
		Expect(s.BallVY).To(Equal(4.0))
		Expect(ev).To(Equal(pong.Events{}))
	})

	Context("at the top and bottom walls", func() {
		It("inverts a ball leaving through the top", func() {
			s.BallY, s.BallVX, s.BallVY = 0, 4, -4

			ev := pong.Step(&s, p, 1, rng)

			Expect(ev.WallBounce).To(BeTrue())
			Expect(s.BallVX).To(Equal(4.0))
			Expect(s.BallVY).To(Equal(4.0))
			Expect(s.BallY).To(BeNumerically(">=", 0))
		})

		It("keeps the vertical magnitude on the bottom wall", func() {
			s.BallY, s.BallVY = p.Height-5, 3

			pong.Step(&s, p, 1, rng)

			Expect(s.BallVY).To(Equal(-3.0))
			Expect(s.BallY).To(BeNumerically("<=", p.Height))
		})
	})

	Context("on the player paddle", func() {
		BeforeEach(func() {
			s.PlayerY = 75
			s.BallX, s.BallY = 12, 100
			s.BallVX, s.BallVY = -4, 0
		})

		It("returns a centre strike straight back 5% faster", func() {
			before := s.Speed()

			ev := pong.Step(&s, p, 1, rng)

			Expect(ev.PlayerHit).To(BeTrue())
			Expect(s.BallVX).To(BeNumerically("~", 4.2, 1e-9))
			Expect(s.BallVY).To(BeNumerically("~", 0, 1e-9))
			Expect(s.Speed() / before).To(BeNumerically("~", 1.05, 1e-9))
		})

		It("angles an off-centre strike and still sends the ball right", func() {
			s.BallY = 85

			pong.Step(&s, p, 1, rng)

			Expect(s.BallVX).To(BeNumerically(">", 0))
			Expect(s.BallVY).To(BeNumerically("<", 0))
			Expect(s.Speed()).To(BeNumerically("~", 4.2, 1e-9))
		})

		It("never bends the return beyond 45 degrees", func() {
			s.BallY = 75.01

			pong.Step(&s, p, 1, rng)

			angle := math.Atan2(s.BallVY, s.BallVX)
			Expect(math.Abs(angle)).To(BeNumerically("<=", math.Pi/4+1e-9))
		})

		It("misses when the ball is outside the paddle span", func() {
			s.BallY = 40

			ev := pong.Step(&s, p, 1, rng)

			Expect(ev.PlayerHit).To(BeFalse())
			Expect(s.BallVX).To(Equal(-4.0))
		})
	})

	Context("on the opponent paddle", func() {
		It("sends the ball left 5% faster", func() {
			s.OpponentY = 75
			s.BallX, s.BallY = p.Width-12, 110
			s.BallVX, s.BallVY = 4, 0
			before := s.Speed()

			ev := pong.Step(&s, p, 1, rng)

			Expect(ev.OpponentHit).To(BeTrue())
			Expect(s.BallVX).To(BeNumerically("<", 0))
			Expect(s.BallVY).To(BeNumerically(">", 0))
			Expect(s.Speed() / before).To(BeNumerically("~", 1.05, 1e-9))
		})
	})

	Context("when the ball leaves the court", func() {
		It("serves from the centre at base speed", func() {
			s.OpponentY = 75
			s.BallX, s.BallY = p.Width-1, 20
			s.BallVX, s.BallVY = 8, 0
			player, opponent := s.PlayerY, s.OpponentY

			ev := pong.Step(&s, p, 1, rng)

			Expect(ev.Point).To(Equal(pong.SidePlayer))
			Expect(s.BallX).To(Equal(p.Width / 2))
			Expect(s.BallY).To(Equal(p.Height / 2))
			Expect(s.Speed()).To(BeNumerically("~", p.BallSpeed*math.Sqrt2, 1e-9))
			Expect(s.PlayerY).To(Equal(player))
			Expect(s.OpponentY).To(Equal(opponent))
		})

		It("credits the opponent when the ball leaves on the left", func() {
			s.PlayerY = 0
			s.BallX, s.BallY = 1, 150
			s.BallVX, s.BallVY = -4, 0

			ev := pong.Step(&s, p, 1, rng)

			Expect(ev.Point).To(Equal(pong.SideOpponent))
			Expect(s.BallX).To(Equal(p.Width / 2))
		})

		It("reaches all four diagonals", func() {
			seen := map[[2]bool]bool{}
			for seed := int64(0); seed < 200 && len(seen) < 4; seed++ {
				st := pong.NewState(p)
				pong.Serve(&st, p, rand.New(rand.NewSource(seed)))
				Expect(math.Abs(st.BallVX)).To(Equal(p.BallSpeed))
				Expect(math.Abs(st.BallVY)).To(Equal(p.BallSpeed))
				seen[[2]bool{st.BallVX > 0, st.BallVY > 0}] = true
			}
			Expect(seen).To(HaveLen(4))
		})
	})

	It("keeps paddles and ball on the surface over a long random run", func() {
		opp := pong.NewOpponent(p)
		for i := 0; i < 20000; i++ {
			ts := 0.5 + rng.Float64()*2.5
			s.PlayerY = p.ClampPaddle(rng.Float64()*p.Height*1.5 - p.Height/4)
			pong.Step(&s, p, ts, rng)
			opp.Update(&s, p, ts)

			Expect(s.PlayerY).To(BeNumerically(">=", 0))
			Expect(s.PlayerY).To(BeNumerically("<=", p.MaxPaddleY()))
			Expect(s.OpponentY).To(BeNumerically(">=", 0))
			Expect(s.OpponentY).To(BeNumerically("<=", p.MaxPaddleY()))
			Expect(s.BallY).To(BeNumerically(">=", 0))
			Expect(s.BallY).To(BeNumerically("<=", p.Height))
			Expect(s.IsValid()).To(BeTrue())
		}
	})
})

var _ = Describe("TimeScale", func() {
	DescribeTable("normalises elapsed time to 60 Hz frames",
		func(elapsed time.Duration, want float64) {
			Expect(pong.TimeScale(elapsed)).To(BeNumerically("~", want, 1e-3))
		},
		Entry("first tick", time.Duration(0), 1.0),
		Entry("clock going backwards", -5*time.Millisecond, 1.0),
		Entry("one frame", pong.ReferenceFrame, 1.0),
		Entry("two frames", 2*pong.ReferenceFrame, 2.0),
		Entry("half a frame", pong.ReferenceFrame/2, 0.5),
	)

	It("treats non-finite samples as one frame", func() {
		Expect(pong.TimeScaleMillis(math.NaN())).To(Equal(1.0))
		Expect(pong.TimeScaleMillis(math.Inf(1))).To(Equal(1.0))
	})
})
