// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package simlog records the time series of membrane simulation runs in an
etable.Table, and writes them out as CSV files.  Long runs at fine time
steps produce large tables, so a Stride can be used to keep only every
Nth step.
*/
package simlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/neurosim/membrane"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 6

// Log holds the parameters for logging runs to tables
type Log struct {
	Stride int      `def:"1" min:"1" desc:"record every Stride'th time step -- the last step is always recorded"`
	Vars   []string `desc:"names of the State series to record, in column order -- all series if empty"`
	Prec   int      `def:"6" desc:"precision for writing float values"`
}

func (lg *Log) Defaults() {
	lg.Stride = 1
	lg.Prec = LogPrec
}

// Update ensures values are in range
func (lg *Log) Update() {
	if lg.Stride < 1 {
		lg.Stride = 1
	}
	if lg.Prec <= 0 {
		lg.Prec = LogPrec
	}
}

// Rows returns the indexes of the steps recorded out of n
func (lg *Log) Rows(n int) []int {
	lg.Update()
	if n <= 0 {
		return nil
	}
	rows := make([]int, 0, n/lg.Stride+2)
	for t := 0; t < n; t += lg.Stride {
		rows = append(rows, t)
	}
	if rows[len(rows)-1] != n-1 {
		rows = append(rows, n-1)
	}
	return rows
}

// Columns returns the series to record from st, in order
func (lg *Log) Columns(st *membrane.State) ([]membrane.Var, error) {
	if len(lg.Vars) == 0 {
		return st.Vars(), nil
	}
	cols := make([]membrane.Var, len(lg.Vars))
	for i, nm := range lg.Vars {
		vals := st.Series(nm)
		if vals == nil {
			return nil, fmt.Errorf("simlog: %v model has no series named %q", st.Type, nm)
		}
		cols[i] = membrane.Var{Name: nm, Vals: vals}
	}
	return cols, nil
}

// ConfigTable configures the table with one float column per recorded series
func (lg *Log) ConfigTable(dt *etable.Table, name string, cols []membrane.Var) {
	dt.SetMetaData("name", name)
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(lg.Prec))

	sch := make(etable.Schema, len(cols))
	for i, cl := range cols {
		sch[i] = etable.Column{cl.Name, etensor.FLOAT64, nil, nil}
	}
	dt.SetFromSchema(sch, 0)
}

// Table returns a new table holding the recorded steps of the state
func (lg *Log) Table(st *membrane.State, name string) (*etable.Table, error) {
	cols, err := lg.Columns(st)
	if err != nil {
		return nil, err
	}
	dt := &etable.Table{}
	lg.ConfigTable(dt, name, cols)
	rows := lg.Rows(st.Len())
	dt.SetNumRows(len(rows))
	for _, cl := range cols {
		for r, t := range rows {
			dt.SetCellFloat(cl.Name, r, cl.Vals[t])
		}
	}
	return dt, nil
}

// WriteCSV writes the recorded steps of the state as comma-separated values
// with a header row
func (lg *Log) WriteCSV(w io.Writer, st *membrane.State, name string) error {
	dt, err := lg.Table(st, name)
	if err != nil {
		return err
	}
	return dt.WriteCSV(w, etable.Comma, etable.Headers)
}

// SaveCSV writes the state to the named file, reporting the size of the
// state in memory
func (lg *Log) SaveCSV(filename string, st *membrane.State, name string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := lg.WriteCSV(f, st, name); err != nil {
		return fmt.Errorf("simlog.SaveCSV %v: %w", filename, err)
	}
	log.Printf("saved: %v  steps: %d  state: %v\n", filename, st.Len(), SizeReport(st))
	return f.Close()
}

// SizeReport returns the memory held by the state in human readable form
func SizeReport(st *membrane.State) string {
	return datasize.ByteSize(st.MemBytes()).HumanReadable()
}
