package thermolog

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"k8s.io/klog/v2"
)

var reportColumns = []string{"FileName", "DateTime", "FocalLength", "TempMax", "TempMin"}

var reportDateFormat = "2006-01-02 15:04:05"

// WriteReport exports every record, incomplete ones included, to an XLSX
// workbook at c.OutFile. An empty record set writes nothing.
func WriteReport(c *Config, recs []*Record) error {
	if len(recs) == 0 {
		klog.Infof("no records to export")
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("header %s: %w", col, err)
		}
	}

	for i, r := range recs {
		row := i + 2

		set := func(col int, v any) error {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return fmt.Errorf("cell %d,%d: %w", col, row, err)
			}
			return f.SetCellValue(sheet, cell, v)
		}

		if err := set(1, r.FileName); err != nil {
			return err
		}
		if r.Taken != nil {
			if err := set(2, r.Taken.Format(reportDateFormat)); err != nil {
				return err
			}
		}
		if err := set(3, r.FocalLength); err != nil {
			return err
		}
		if r.TempMax != nil {
			if err := set(4, *r.TempMax); err != nil {
				return err
			}
		}
		if r.TempMin != nil {
			if err := set(5, *r.TempMin); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(c.OutFile); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	klog.Infof("exported %d records to %s", len(recs), c.OutFile)
	return nil
}
