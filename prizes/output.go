/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package prizes

import (
	"fmt"
	"strings"

	"github.com/mikeb26/swisstd/internal"
)

// FormatAmount renders a cash amount in dollars and cents.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// BuildPrizesOutput formats a distribution as a table followed by the cash
// summary and any validation warnings.
func BuildPrizesOutput(dist Distribution) string {
	var sb strings.Builder
	if len(dist.Records) == 0 {
		sb.WriteString("No prizes awarded\n")
	} else {
		headers := []string{"Place", "Name", "Prize", "Award"}
		var rows [][]string
		for _, r := range dist.Records {
			place := ""
			if r.Position > 0 {
				place = fmt.Sprintf("%v.", r.Position)
				if r.TieGroup {
					place = fmt.Sprintf("T%v.", r.Position)
				}
			}
			award := string(r.PrizeType)
			if r.PrizeType == TypeCash {
				award = FormatAmount(r.Amount)
			}
			rows = append(rows, []string{place, r.EntityName, r.PrizeName, award})
		}
		sb.WriteString(internal.FormatTable(headers, rows))
	}

	if dist.TotalCash > 0 {
		sb.WriteString(fmt.Sprintf("\nPrize fund %v, distributed %v, leftover %v\n",
			FormatAmount(dist.TotalCash), FormatAmount(dist.Distributed),
			FormatAmount(dist.Leftover)))
	}
	for _, m := range dist.Messages {
		sb.WriteString(fmt.Sprintf("warning: %v\n", m))
	}

	return sb.String()
}
