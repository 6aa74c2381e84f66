package methods

type profiler struct{}

func (profiler) Start(labels ...string) {}

func (profiler) Stop(labels ...string) {}

func (profiler) Time(labels ...string) {}

func (profiler) TimeEnd(labels ...string) {}

var prof profiler
