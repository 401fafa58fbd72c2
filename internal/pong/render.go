package pong

// Render draws the current state onto s. It does not mutate the game.
func (g *Game) Render(s Surface) {
	p := g.palette
	s.Clear(p.Background)

	player := g.PlayerPaddle()
	s.FillRect(player.X, player.Y, player.Width, player.Height, p.Paddle)
	cpu := g.ComputerPaddle()
	s.FillRect(cpu.X, cpu.Y, cpu.Width, cpu.Height, p.Paddle)

	s.FillCircle(g.ball.X, g.ball.Y, g.ball.Radius, p.Ball)

	mid := g.width / 2
	s.StrokeDashedLine(mid, 0, mid, g.height, NetWidth, []float64{NetDash, NetGap}, p.Net)
}
