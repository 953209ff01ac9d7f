package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var ErrExportGenerateFail = errors.New("엑셀 파일 생성에 실패했습니다")

// ExportService 수강 이력 내보내기 업무 인터페이스
//
// 내보내기는 bytes.Buffer로 반환하고 Handler에서 응답 헤더를 설정해 내려보낸다.
type ExportService interface {
	// ExportHistory 저장된 수강 이력을 학기별 Excel(.xlsx)로 작성한다
	ExportHistory(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	transcript TranscriptService
	logger     *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(transcript TranscriptService, logger *zap.Logger) ExportService {
	return &exportService{transcript: transcript, logger: logger}
}

func (s *exportService) ExportHistory(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	history, err := s.transcript.GetHistory(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "수강이력"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 32)
	f.SetColWidth(sheetName, "D", "E", 8)
	f.SetColWidth(sheetName, "F", "F", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#B30738"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	row := 1
	f.SetCellValue(sheetName, cell("A", row), "학기")
	f.SetCellValue(sheetName, cell("B", row), "과목코드")
	f.SetCellValue(sheetName, cell("C", row), "과목명")
	f.SetCellValue(sheetName, cell("D", row), "학점")
	f.SetCellValue(sheetName, cell("E", row), "등급")
	f.SetCellValue(sheetName, cell("F", row), "비고")
	f.SetCellStyle(sheetName, cell("A", row), cell("F", row), headerStyle)
	row++

	for _, sem := range history.Semesters {
		for _, c := range sem.Courses {
			f.SetCellValue(sheetName, cell("A", row), sem.Label)
			f.SetCellValue(sheetName, cell("B", row), c.CourseCode)
			f.SetCellValue(sheetName, cell("C", row), c.CourseName)
			f.SetCellValue(sheetName, cell("D", row), c.Credit)
			f.SetCellValue(sheetName, cell("E", row), c.Grade)
			f.SetCellValue(sheetName, cell("F", row), remarkText(c.Failed, c.Retake, c.English, c.Duplicate))
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("엑셀 쓰기 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := "수강이력.xlsx"
	if history.LastSemester != "" {
		filename = fmt.Sprintf("수강이력_%s.xlsx", history.LastSemester)
	}
	return buf, filename, nil
}

// remarkText 비고 플래그를 표시 문자열로 합친다
func remarkText(failed, retake, english, duplicate bool) string {
	var parts []string
	if failed {
		parts = append(parts, "낙제")
	}
	if retake {
		parts = append(parts, "재수강")
	}
	if english {
		parts = append(parts, "영어강의")
	}
	if duplicate {
		parts = append(parts, "중복과목")
	}
	if len(parts) == 0 {
		return "-"
	}
	text := parts[0]
	for _, p := range parts[1:] {
		text += ", " + p
	}
	return text
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
