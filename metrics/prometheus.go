package metrics

import (
	"fmt"
	"io"
	"strings"
)

// WriteText writes every metric in r in Prometheus text exposition format,
// sorted by name. Dots and dashes in names become underscores and namespace,
// if non-empty, is prepended.
func WriteText(w io.Writer, r *Registry, namespace string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	for _, name := range sortedKeys(r.counters) {
		writeMetric(&b, promName(namespace, name), "counter", name, r.counters[name].Value())
	}
	for _, name := range sortedKeys(r.gauges) {
		writeMetric(&b, promName(namespace, name), "gauge", name, r.gauges[name].Value())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeMetric(b *strings.Builder, prom, typ, help string, v int64) {
	fmt.Fprintf(b, "# HELP %s %s %s\n", prom, typ, help)
	fmt.Fprintf(b, "# TYPE %s %s\n", prom, typ)
	fmt.Fprintf(b, "%s %d\n", prom, v)
}

func promName(namespace, name string) string {
	sanitized := strings.NewReplacer(".", "_", "-", "_").Replace(name)
	if namespace != "" {
		return namespace + "_" + sanitized
	}
	return sanitized
}
