package perfmon

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	libhoney "github.com/honeycombio/libhoney-go"
	"github.com/honeycombio/libhoney-go/transmission"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/perfmonio/perfmon-go/client"
	"github.com/perfmonio/perfmon-go/sample"
	"github.com/perfmonio/perfmon-go/track"
)

const (
	defaultWriteKey = "writekey-placeholder"
	defaultDataset  = "perfmon-go"

	version = "1.0.0"
)

// Config is where you configure how reports are rendered and where
// section events get exported. Every field is optional; the zero Config
// gives you stdout reports, English digit grouping, and events addressed
// with a placeholder write key.
type Config struct {
	// WriteKey is your Honeycomb authentication token, if you want
	// sections exported as events. default: writekey-placeholder
	WriteKey string
	// Dataset is the name of the dataset section events are sent to.
	// default: perfmon-go
	Dataset string
	// ServiceName identifies your application. If set it is added to all
	// section events as `service_name`.
	ServiceName string
	// SampleRate N keeps roughly 1/N section events, decided
	// deterministically per run id + section name. default: 1 (keep all)
	SampleRate uint
	// APIHost is the hostname of the API server events are sent to.
	APIHost string
	// STDOUT when set to true will print events to STDOUT *instead* of
	// sending them over the network; useful for development.
	STDOUT bool
	// Mute when set to true will discard events entirely; useful for
	// tests and CI.
	Mute bool
	// Debug will emit verbose logging to STDOUT when true.
	Debug bool
	// Writer receives rendered reports. default: os.Stdout
	Writer io.Writer
	// Locale controls thousands grouping in rendered reports.
	// default: language.English
	Locale language.Tag
}

var (
	mu       sync.Mutex
	registry = track.New()
	writer   io.Writer = os.Stdout
)

// Init configures the library: it wires up the event client and replaces
// the default registry with one using the configured locale, publisher
// and sampler. The default registry is usable without Init; sections
// recorded before Init are dropped by it.
func Init(config Config) error {
	if config.WriteKey == "" {
		config.WriteKey = defaultWriteKey
	}
	if config.Dataset == "" {
		config.Dataset = defaultDataset
	}
	var tx transmission.Sender
	if config.STDOUT {
		tx = &transmission.WriterSender{W: os.Stdout}
	}
	if config.Mute {
		tx = &transmission.DiscardSender{}
	}
	clientConfig := libhoney.ClientConfig{
		APIKey:       config.WriteKey,
		Dataset:      config.Dataset,
		Transmission: tx,
	}
	if config.APIHost != "" {
		clientConfig.APIHost = config.APIHost
	}
	if err := client.Init(clientConfig); err != nil {
		return err
	}

	// set the version in both the useragent and in all events
	libhoney.UserAgentAddition = fmt.Sprintf("perfmon/%s", version)
	client.AddField("meta.perfmon_version", version)

	if config.ServiceName != "" {
		client.AddField("service_name", config.ServiceName)
	}
	if hostname, err := os.Hostname(); err == nil {
		client.AddField("meta.local_hostname", hostname)
	}

	var sampler sample.Sampler
	if config.SampleRate > 1 {
		ds, err := sample.NewDeterministicSampler(config.SampleRate)
		if err != nil {
			return err
		}
		sampler = ds
	}

	locale := config.Locale
	if locale == language.Und {
		locale = language.English
	}

	mu.Lock()
	writer = os.Stdout
	if config.Writer != nil {
		writer = config.Writer
	}
	registry = track.New(
		track.WithPrinter(message.NewPrinter(locale)),
		track.WithPublisher(client.NewPublisher(sampler)),
	)
	mu.Unlock()

	if config.Debug {
		go readResponses(client.TxResponses())
	}
	return nil
}

// Default returns the registry the package-level functions operate on.
// Hand it to the middleware wrappers so their sections land in the same
// report.
func Default() *track.Registry {
	mu.Lock()
	defer mu.Unlock()
	return registry
}

// Begin starts timing a named section on the default registry and
// returns its id. Pass an empty name for UNKNOWN and resolution 0 for
// milliseconds.
func Begin(name string, res track.Resolution) int {
	return Default().Begin(name, res)
}

// BeginAt is Begin with a caller-supplied start instant.
func BeginAt(name string, res track.Resolution, start time.Time) int {
	return Default().BeginAt(name, res, start)
}

// End records the elapsed time of a section begun with Begin.
func End(id int) error {
	return Default().End(id)
}

// Render writes the report for all tracked sections to the configured
// writer. An empty title falls back to "Performance List".
func Render(title string) error {
	mu.Lock()
	reg, w := registry, writer
	mu.Unlock()
	return reg.Fprint(w, title)
}

// Reset drops every section tracked on the default registry.
func Reset() {
	Default().Reset()
}

// Flush sends any pending section events. This is optional; events are
// flushed on a timer otherwise. It is useful before short-lived processes
// exit to make sure events get out first.
func Flush() {
	client.Flush()
}

// Close shuts down the event pipeline. Closing flushes any pending
// events and blocks until they have been sent. Do not record sections
// you care about exporting after Close.
func Close() {
	client.Close()
}

// readResponses pulls from the response queue and spits them to STDOUT
// for debugging
func readResponses(responses chan transmission.Response) {
	for r := range responses {
		var metadata string
		if r.Metadata != nil {
			metadata = fmt.Sprintf("%s", r.Metadata)
		}
		if r.StatusCode >= 200 && r.StatusCode < 300 {
			message := "Successfully sent event"
			if metadata != "" {
				message += fmt.Sprintf(": %s", metadata)
			}
			fmt.Printf("%s\n", message)
		} else {
			fmt.Printf("Error sending event! %s had code %d, err %v and response body %s \n",
				metadata, r.StatusCode, r.Err, r.Body)
		}
	}
}
