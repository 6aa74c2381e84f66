package ignore

type timer struct{}

func (timer) Time(labels ...string) {}

func (timer) TimeEnd(labels ...string) {}

var console timer
