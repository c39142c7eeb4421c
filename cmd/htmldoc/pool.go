package main

import (
	htmldoc "github.com/alnah/go-htmldoc"
)

// exporterPool adapts *htmldoc.ExporterPool to the Pool interface used
// by the conversion loop.
type exporterPool struct {
	pool *htmldoc.ExporterPool
}

var _ Pool = (*exporterPool)(nil)

func (p *exporterPool) Acquire() Exporter {
	return p.pool.Acquire()
}

func (p *exporterPool) Release(exp Exporter) {
	if e, ok := exp.(*htmldoc.Exporter); ok {
		p.pool.Release(e)
	}
}

func (p *exporterPool) Size() int {
	return p.pool.Size()
}
