package decorator

import (
	"github.com/a-peyrard/reflective/reflectutils"
	"github.com/stretchr/testify/mock"
)

type (
	Uploader interface {
		Upload(file, destination string) (bool, error)
	}

	Counter interface {
		Next() int8
		Total() int32
		Sum(values ...int) int
	}

	// Pinger has a func typed proxy.
	Pinger interface {
		Ping() string
	}

	// Beeper has a struct proxy holding a slice.
	Beeper interface {
		Beep() string
	}

	// NotProxied has no registered proxy.
	NotProxied interface {
		Do()
	}

	Service struct {
		uploader Uploader
		Counter  Counter
		Name     string
	}

	MockUploader struct {
		mock.Mock
	}

	recordingUploader struct {
		name      string
		journal   *[]string
		result    bool
		err       error
		panicWith any
	}

	fixedCounter struct {
		next  int8
		total int32
	}

	failingCounter struct {
		panicWith any
	}

	QuotaError struct {
		Remaining int
	}

	// DiskQuotaError embeds QuotaError, it is a different kind.
	DiskQuotaError struct {
		QuotaError
		Disk string
	}

	uploaderProxy struct {
		invoker Invoker
	}

	counterProxy struct {
		invoker Invoker
	}

	pingerFunc func() string

	beeperProxy struct {
		invoker Invoker
		tones   []string
	}

	echo string
)

func init() {
	RegisterProxy[Uploader](func(invoker Invoker) Uploader {
		return &uploaderProxy{invoker: invoker}
	})
	RegisterProxy[Counter](func(invoker Invoker) Counter {
		return &counterProxy{invoker: invoker}
	})
	RegisterProxy[Pinger](func(invoker Invoker) Pinger {
		return pingerFunc(func() string {
			return Out[string](invoker.Invoke("Ping"), 0)
		})
	})
	RegisterProxy[Beeper](func(invoker Invoker) Beeper {
		return beeperProxy{invoker: invoker}
	})
}

func (f pingerFunc) Ping() string {
	return f()
}

func (p beeperProxy) Beep() string {
	return Out[string](p.invoker.Invoke("Beep"), 0)
}

func (e echo) Ping() string {
	return string(e)
}

func (e echo) Beep() string {
	return string(e)
}

func (p *uploaderProxy) Upload(file string, destination string) (bool, error) {
	out := p.invoker.Invoke("Upload", file, destination)
	return Out[bool](out, 0), Out[error](out, 1)
}

func (p *counterProxy) Next() int8 {
	out := p.invoker.Invoke("Next")
	return Out[int8](out, 0)
}

func (p *counterProxy) Total() int32 {
	out := p.invoker.Invoke("Total")
	return Out[int32](out, 0)
}

func (p *counterProxy) Sum(values ...int) int {
	out := p.invoker.Invoke("Sum", values)
	return Out[int](out, 0)
}

func (m *MockUploader) Upload(file, destination string) (bool, error) {
	args := m.Called(file, destination)
	return args.Bool(0), args.Error(1)
}

func (r *recordingUploader) Upload(_, _ string) (bool, error) {
	*r.journal = append(*r.journal, r.name)
	if r.panicWith != nil {
		panic(r.panicWith)
	}
	return r.result, r.err
}

func (c *fixedCounter) Next() int8 {
	return c.next
}

func (c *fixedCounter) Total() int32 {
	return c.total
}

func (c *fixedCounter) Sum(values ...int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum
}

func (c *failingCounter) Next() int8 {
	panic(c.panicWith)
}

func (c *failingCounter) Total() int32 {
	panic(c.panicWith)
}

func (c *failingCounter) Sum(_ ...int) int {
	panic(c.panicWith)
}

func (e *QuotaError) Error() string {
	return "quota exceeded"
}

func (e *DiskQuotaError) Error() string {
	return "disk quota exceeded on " + e.Disk
}

func recorder(name string, journal *[]string) *recordingUploader {
	return &recordingUploader{name: name, journal: journal}
}

func uploaderSlot(service *Service) Accessor[Uploader] {
	return Bind[Uploader](reflectutils.CapabilityResolver{}, service, "uploader")
}
