// This file contains manual additions to the automatically generated mocks
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockSignedGateway extends MockPaymentGateway with signature verification,
// for gateways that implement both PaymentGateway and SignatureVerifier.
type MockSignedGateway struct {
	*MockPaymentGateway
}

// NewMockSignedGateway creates a new mock instance.
func NewMockSignedGateway(ctrl *gomock.Controller) *MockSignedGateway {
	return &MockSignedGateway{MockPaymentGateway: NewMockPaymentGateway(ctrl)}
}

// VerifySignature mocks base method.
func (m *MockSignedGateway) VerifySignature(orderID, transactionID, signature string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m.MockPaymentGateway, "VerifySignature", orderID, transactionID, signature)
	ret0, _ := ret[0].(bool)
	return ret0
}

// VerifySignature indicates an expected call of VerifySignature.
func (mr *MockPaymentGatewayMockRecorder) VerifySignature(orderID, transactionID, signature interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifySignature", reflect.TypeOf((*MockSignedGateway)(nil).VerifySignature), orderID, transactionID, signature)
}
