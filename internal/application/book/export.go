package book

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/xiebiao/catalog/internal/domain/book"
	apperrors "github.com/xiebiao/catalog/pkg/errors"
	"github.com/xiebiao/catalog/pkg/metrics"
)

// CSVFilename 导出文件名
const CSVFilename = "libros.csv"

var csvHeader = []string{"ID", "Título", "Autor", "Categoría", "Editorial", "Precio", "Disponible"}

// ExportCSV 导出所有有效图书（按标题排序）
// 输出带BOM的UTF-8，Excel可以直接识别重音字符
func (uc *UseCase) ExportCSV(ctx context.Context, w io.Writer) error {
	books, err := uc.svc.List(ctx)
	if err != nil {
		return err
	}

	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)

	if err := cw.Write(csvHeader); err != nil {
		return apperrors.Wrap(err, "写入CSV失败")
	}
	for _, b := range books {
		if err := cw.Write(csvRow(b)); err != nil {
			return apperrors.Wrap(err, "写入CSV失败")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.Wrap(err, "写入CSV失败")
	}
	if err := bw.Close(); err != nil {
		return apperrors.Wrap(err, "写入CSV失败")
	}

	metrics.RecordExport(len(books))
	return nil
}

func csvRow(b *book.Book) []string {
	return []string{
		strconv.FormatUint(uint64(b.ID), 10),
		b.Title,
		book.RefName(b.Author),
		book.RefName(b.Genre),
		book.RefName(b.Editorial),
		b.Price.StringFixed(2),
		b.Available(),
	}
}
