package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/qrtclosure/qrt_closure_app/internal/apperrors"
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	portssvc "github.com/qrtclosure/qrt_closure_app/internal/core/ports/services"
	"github.com/qrtclosure/qrt_closure_app/internal/core/services"
	"github.com/qrtclosure/qrt_closure_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	mockDocRepo  *MockDocumentRepository
	mockLineRepo *MockLineRepository
	mockImporter *MockLineImporter
	service      portssvc.DocumentSvcFacade
	userID       string
	documentID   string
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockDocRepo = new(MockDocumentRepository)
	suite.mockLineRepo = new(MockLineRepository)
	suite.mockImporter = new(MockLineImporter)
	suite.service = services.NewDocumentService(suite.mockDocRepo, suite.mockLineRepo, services.WithLineImporter(suite.mockImporter))
	suite.userID = uuid.NewString()
	suite.documentID = uuid.NewString()
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_Success() {
	ctx := context.Background()
	req := dto.CreateDocumentRequest{Name: "Sales Register Q1", Kind: "SALES_REGISTER", Period: "2025-Q1"}

	suite.mockDocRepo.On("SaveDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		_, err := uuid.Parse(d.DocumentID)
		return err == nil && d.OwnerID == suite.userID && d.Name == req.Name && d.Kind == domain.SalesRegister &&
			d.Period == "2025-Q1" && d.CreatedBy == suite.userID && d.LineCount == 0
	})).Return(nil).Once()

	document, err := suite.service.CreateDocument(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(document)
	suite.Equal(req.Name, document.Name)
	suite.Equal(suite.userID, document.OwnerID)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_InvalidKind() {
	document, err := suite.service.CreateDocument(context.Background(), dto.CreateDocumentRequest{Name: "x", Kind: "PAYSLIP"}, suite.userID)

	suite.Nil(document)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "SaveDocument", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_SaveError() {
	ctx := context.Background()
	suite.mockDocRepo.On("SaveDocument", ctx, mock.AnythingOfType("domain.Document")).Return(assert.AnError).Once()

	document, err := suite.service.CreateDocument(ctx, dto.CreateDocumentRequest{Name: "x", Kind: "GST_RETURN"}, suite.userID)

	suite.Nil(document)
	suite.ErrorIs(err, assert.AnError)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestGetDocumentByID() {
	ctx := context.Background()
	doc := ownedDocument(suite.documentID, suite.userID)
	suite.mockDocRepo.On("FindDocumentByID", ctx, suite.documentID).Return(doc, nil).Once()

	got, err := suite.service.GetDocumentByID(ctx, suite.documentID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(doc, got)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestGetDocumentByID_NotOwner() {
	ctx := context.Background()
	suite.mockDocRepo.On("FindDocumentByID", ctx, suite.documentID).Return(ownedDocument(suite.documentID, "someone-else"), nil).Once()

	got, err := suite.service.GetDocumentByID(ctx, suite.documentID, suite.userID)

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *DocumentServiceTestSuite) TestGetDocumentByID_NotFound() {
	ctx := context.Background()
	suite.mockDocRepo.On("FindDocumentByID", ctx, suite.documentID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetDocumentByID(ctx, suite.documentID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DocumentServiceTestSuite) TestListDocuments() {
	ctx := context.Background()
	next := "cursor-2"
	token := "cursor-1"
	docs := []domain.Document{*ownedDocument("d1", suite.userID), *ownedDocument("d2", suite.userID)}
	suite.mockDocRepo.On("ListDocumentsByOwner", ctx, suite.userID, 2, &token).Return(docs, &next, nil).Once()

	resp, err := suite.service.ListDocuments(ctx, suite.userID, dto.ListDocumentsParams{Limit: 2, NextToken: token})

	suite.Require().NoError(err)
	suite.Len(resp.Documents, 2)
	suite.Equal("d1", resp.Documents[0].DocumentID)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *DocumentServiceTestSuite) TestListDocuments_FirstPage() {
	ctx := context.Background()
	suite.mockDocRepo.On("ListDocumentsByOwner", ctx, suite.userID, 0, (*string)(nil)).Return([]domain.Document{}, nil, nil).Once()

	resp, err := suite.service.ListDocuments(ctx, suite.userID, dto.ListDocumentsParams{})

	suite.Require().NoError(err)
	suite.Empty(resp.Documents)
	suite.Nil(resp.NextToken)
}

func (suite *DocumentServiceTestSuite) TestAddLines_Success() {
	ctx := context.Background()
	lines := []domain.TransactionLine{
		salesLine(1, "INV-1", "Widget", "10"),
		salesLine(2, "INV-1", "Gadget", "1,250.00"),
	}
	suite.mockDocRepo.On("FindDocumentByID", ctx, suite.documentID).Return(ownedDocument(suite.documentID, suite.userID), nil).Once()
	suite.mockLineRepo.On("AppendLines", ctx, suite.documentID, lines, suite.userID).Return(nil).Once()

	n, err := suite.service.AddLines(ctx, suite.documentID, lines, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, n)
	suite.mockLineRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestAddLines_Rejected() {
	tests := []struct {
		name  string
		lines []domain.TransactionLine
	}{
		{"empty batch", nil},
		{"duplicate id", []domain.TransactionLine{salesLine(1, "A", "x", "1"), salesLine(1, "A", "y", "2")}},
		{"bad amount", []domain.TransactionLine{salesLine(1, "A", "x", "N/A")}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			ctx := context.Background()
			suite.mockDocRepo.On("FindDocumentByID", ctx, suite.documentID).Return(ownedDocument(suite.documentID, suite.userID), nil).Once()

			n, err := suite.service.AddLines(ctx, suite.documentID, tt.lines, suite.userID)

			suite.Zero(n)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockLineRepo.AssertNotCalled(suite.T(), "AppendLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestAddLines_DuplicateInStore() {
	ctx := context.Background()
	lines := []domain.TransactionLine{salesLine(7, "INV-1", "Widget", "10")}
	suite.mockDocRepo.On("FindDocumentByID", ctx, suite.documentID).Return(ownedDocument(suite.documentID, suite.userID), nil).Once()
	suite.mockLineRepo.On("AppendLines", ctx, suite.documentID, lines, suite.userID).Return(apperrors.NewConflictError("line 7")).Once()

	_, err := suite.service.AddLines(ctx, suite.documentID, lines, suite.userID)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *DocumentServiceTestSuite) TestAddLines_NotOwner() {
	ctx := context.Background()
	suite.mockDocRepo.On("FindDocumentByID", ctx, suite.documentID).Return(ownedDocument(suite.documentID, "someone-else"), nil).Once()

	_, err := suite.service.AddLines(ctx, suite.documentID, []domain.TransactionLine{salesLine(1, "A", "x", "1")}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLineRepo.AssertNotCalled(suite.T(), "AppendLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestImportLines() {
	ctx := context.Background()
	src := bytes.NewReader([]byte("xlsx"))
	lines := []domain.TransactionLine{salesLine(4, "INV-1", "Widget", "255")}
	suite.mockDocRepo.On("FindDocumentByID", ctx, suite.documentID).Return(ownedDocument(suite.documentID, suite.userID), nil).Once()
	suite.mockImporter.On("ReadLines", ctx, src, "Sales").Return(lines, nil).Once()
	suite.mockLineRepo.On("AppendLines", ctx, suite.documentID, lines, suite.userID).Return(nil).Once()

	n, err := suite.service.ImportLines(ctx, suite.documentID, src, "Sales", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, n)
	suite.mockImporter.AssertExpectations(suite.T())
	suite.mockLineRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestImportLines_ReadError() {
	ctx := context.Background()
	src := bytes.NewReader(nil)
	suite.mockDocRepo.On("FindDocumentByID", ctx, suite.documentID).Return(ownedDocument(suite.documentID, suite.userID), nil).Once()
	suite.mockImporter.On("ReadLines", ctx, src, "").Return(nil, apperrors.ErrValidation).Once()

	_, err := suite.service.ImportLines(ctx, suite.documentID, src, "", suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
