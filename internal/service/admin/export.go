package admin

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/service/admin/models"
)

// Листы книги экспорта
const (
	SheetUsers    = "users"
	SheetBookings = "bookings"
	SheetFeedback = "feedback"
	SheetShops    = "shops"
)

// Export пишет в w xlsx-книгу: по листу на таблицу, первая строка - заголовки
func (s *Service) Export(ctx context.Context, sess *domain.Session, w io.Writer) error {
	if err := s.authorize(sess, "Export"); err != nil {
		return err
	}

	dump, err := s.collect(ctx)
	if err != nil {
		return err
	}

	f, err := buildWorkbook(dump)
	if err != nil {
		s.logger.Error("Export: failed to build workbook: %v", err)
		return fmt.Errorf("%w: Export - build workbook: %v", ErrInternal, err)
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		s.logger.Error("Export: failed to write workbook: %v", err)
		return fmt.Errorf("%w: Export - write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("Export: user id=%d exported database", sess.UserID)
	return nil
}

func buildWorkbook(dump *models.DumpResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	// Переименовываем лист по умолчанию вместо создания пустого лишнего
	if err := f.SetSheetName("Sheet1", SheetUsers); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetBookings, SheetFeedback, SheetShops} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	users := make([][]interface{}, 0, len(dump.Users))
	for _, u := range dump.Users {
		users = append(users, []interface{}{u.ID, u.Name, u.Email, u.Phone})
	}

	bookings := make([][]interface{}, 0, len(dump.Bookings))
	for _, b := range dump.Bookings {
		var owner interface{}
		if b.UserID != nil {
			owner = *b.UserID
		}
		bookings = append(bookings, []interface{}{
			b.ID, owner, b.Name, b.Phone, b.Email, b.CarType, b.ServiceType, b.Date, b.Time, b.Address, b.Status,
		})
	}

	feedback := make([][]interface{}, 0, len(dump.Feedback))
	for _, fb := range dump.Feedback {
		feedback = append(feedback, []interface{}{fb.ID, fb.Name, fb.Rating, fb.Text, fb.TS})
	}

	shops := make([][]interface{}, 0, len(dump.Shops))
	for _, sh := range dump.Shops {
		shops = append(shops, []interface{}{
			sh.ID, sh.ShopName, sh.OwnerName, sh.Email, sh.Phone, sh.Address, sh.City, sh.Pincode, sh.Services,
		})
	}

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{SheetUsers, []interface{}{"id", "name", "email", "phone"}, users},
		{SheetBookings, []interface{}{"id", "user_id", "name", "phone", "email", "car_type", "service_type", "date", "time", "address", "status"}, bookings},
		{SheetFeedback, []interface{}{"id", "name", "rating", "text", "ts"}, feedback},
		{SheetShops, []interface{}{"id", "shop_name", "owner_name", "email", "phone", "address", "city", "pincode", "services"}, shops},
	}

	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows, headerStyle); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet.name, err)
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
