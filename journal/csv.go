package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSV struct {
	execs *csv.Writer
	snaps *csv.Writer
	ef    *os.File
	sf    *os.File
}

func NewCSV(execsPath, snapsPath string) (*CSV, error) {
	ef, err := os.Create(execsPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(snapsPath)
	if err != nil {
		return nil, err
	}

	ew := csv.NewWriter(ef)
	sw := csv.NewWriter(sf)

	if err := ew.Write([]string{"exec_id", "identity", "symbol", "side", "quantity", "price", "notional", "fee", "realized_gain", "win", "executed_at"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"time", "identity", "balance", "total_value", "realized_gains", "total_fees", "trade_count", "win_count"}); err != nil {
		return nil, err
	}

	ew.Flush()
	if err := ew.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSV{ew, sw, ef, sf}, nil
}

func (j *CSV) RecordExecution(r ExecutionRecord) error {
	err := j.execs.Write([]string{
		r.ExecID,
		r.Identity,
		r.Symbol,
		r.Side,
		i(r.Quantity),
		i(r.Price),
		i(r.Notional),
		i(r.Fee),
		i(r.RealizedGain),
		strconv.FormatBool(r.Win),
		r.ExecutedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.execs.Flush()
	return j.execs.Error()
}

func (j *CSV) RecordSnapshot(s PortfolioSnapshot) error {
	err := j.snaps.Write([]string{
		s.Time.Format(time.RFC3339),
		s.Identity,
		i(s.Balance),
		i(s.TotalValue),
		i(s.RealizedGains),
		i(s.TotalFees),
		i(s.TradeCount),
		i(s.WinCount),
	})
	if err != nil {
		return err
	}

	j.snaps.Flush()
	return j.snaps.Error()
}

func (j *CSV) Close() error {
	j.execs.Flush()
	if err := j.execs.Error(); err != nil {
		return err
	}
	j.snaps.Flush()
	if err := j.snaps.Error(); err != nil {
		return err
	}

	if err := j.ef.Close(); err != nil {
		return err
	}
	if err := j.sf.Close(); err != nil {
		return err
	}
	return nil
}

func i(x int64) string {
	return strconv.FormatInt(x, 10)
}
