package pong_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/waitpong/internal/pong"
)

var _ = Describe("Opponent", func() {
	var (
		p   pong.Params
		s   pong.State
		opp *pong.Opponent
	)

	BeforeEach(func() {
		p = pong.DefaultParams()
		s = pong.NewState(p)
		opp = pong.NewOpponent(p)
	})

	It("drifts toward the ball height while the ball moves away", func() {
		s.BallY, s.BallVX = 60, -4
		Expect(opp.Predict(s, p)).To(Equal(60.0))
	})

	It("extrapolates the ball to its edge", func() {
		s.BallX, s.BallY = 150, 100
		s.BallVX, s.BallVY = 4, 0.5
		Expect(opp.Predict(s, p)).To(BeNumerically("~", 100+0.5*150/4, 1e-9))
	})

	It("clamps the prediction to reachable centres", func() {
		s.BallX, s.BallY = 150, 10
		s.BallVX, s.BallVY = 4, -4
		Expect(opp.Predict(s, p)).To(Equal(p.PaddleHeight / 2))

		s.BallY, s.BallVY = 190, 4
		Expect(opp.Predict(s, p)).To(Equal(p.Height - p.PaddleHeight/2))
	})

	It("moves at its fixed speed scaled by the time-scale", func() {
		s.BallX, s.BallY = 150, 100
		s.BallVX, s.BallVY = 4, 2
		start := s.OpponentY

		opp.Update(&s, p, 2)

		Expect(s.OpponentY).To(Equal(start + 2*p.OpponentSpeed))
	})

	It("moves up when the target is above", func() {
		s.BallX, s.BallY = 150, 20
		s.BallVX, s.BallVY = -4, 0
		start := s.OpponentY

		opp.Update(&s, p, 1)

		Expect(s.OpponentY).To(Equal(start - p.OpponentSpeed))
	})

	It("holds still inside the dead zone", func() {
		s.BallY, s.BallVX, s.BallVY = 105, -4, 0
		start := s.OpponentY

		opp.Update(&s, p, 1)

		Expect(s.OpponentY).To(Equal(start))
	})

	It("never leaves the surface", func() {
		opp.DeadZone = 0
		s.OpponentY = p.MaxPaddleY() - 1
		s.BallX, s.BallY = 150, 190
		s.BallVX, s.BallVY = 4, 4

		opp.Update(&s, p, 5)

		Expect(s.OpponentY).To(Equal(p.MaxPaddleY()))
	})
})

var _ = Describe("Score", func() {
	It("adds the per-hit value on player hits only", func() {
		sc := pong.NewScore(10)
		var seen []int
		unsubscribe := sc.Subscribe(func(v int) { seen = append(seen, v) })

		sc.Observe(pong.Events{PlayerHit: true})
		sc.Observe(pong.Events{OpponentHit: true})
		sc.Observe(pong.Events{Point: pong.SideOpponent})
		sc.Observe(pong.Events{PlayerHit: true})

		Expect(sc.Value()).To(Equal(20))
		Expect(seen).To(Equal([]int{10, 20}))

		unsubscribe()
		sc.Observe(pong.Events{PlayerHit: true})
		Expect(seen).To(HaveLen(2))
		Expect(sc.Value()).To(Equal(30))
	})
})

var _ = Describe("Params", func() {
	It("accepts the defaults", func() {
		Expect(pong.DefaultParams().Validate()).To(Succeed())
	})

	DescribeTable("rejects unusable values",
		func(mutate func(*pong.Params)) {
			p := pong.DefaultParams()
			mutate(&p)
			Expect(p.Validate()).To(MatchError(pong.ErrInvalidParams))
		},
		Entry("zero width", func(p *pong.Params) { p.Width = 0 }),
		Entry("negative ball speed", func(p *pong.Params) { p.BallSpeed = -1 }),
		Entry("paddle taller than surface", func(p *pong.Params) { p.PaddleHeight = 500 }),
		Entry("ball wider than surface", func(p *pong.Params) { p.BallRadius = 150 }),
		Entry("slowing rallies", func(p *pong.Params) { p.SpeedUp = 0.9 }),
		Entry("negative dead zone", func(p *pong.Params) { p.DeadZone = -1 }),
	)
})
