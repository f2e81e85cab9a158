/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestReportServed(t *testing.T) {
	okBefore := testutil.ToFloat64(reportsServed.WithLabelValues("standings", StatusOK))
	errBefore := testutil.ToFloat64(reportsServed.WithLabelValues("standings", StatusError))

	ReportServed("standings", nil)
	ReportServed("standings", nil)
	ReportServed("standings", errors.New("boom"))

	if got := testutil.ToFloat64(reportsServed.WithLabelValues("standings", StatusOK)); got != okBefore+2 {
		t.Errorf("expected %v ok reports, got %v", okBefore+2, got)
	}
	if got := testutil.ToFloat64(reportsServed.WithLabelValues("standings", StatusError)); got != errBefore+1 {
		t.Errorf("expected %v failed reports, got %v", errBefore+1, got)
	}
}

func TestObserveEngine(t *testing.T) {
	before := testutil.CollectAndCount(engineLatency)
	ObserveEngine("metrics_test", time.Now().Add(-10*time.Millisecond))
	if got := testutil.CollectAndCount(engineLatency); got != before+1 {
		t.Errorf("expected %v histogram series, got %v", before+1, got)
	}
}
