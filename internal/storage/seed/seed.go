// Package seed holds the demo dataset loaded into an empty store at
// startup: three containers in different lifecycle states and two
// vessel calls. The data mirrors what the voice-agent demo script
// walks through.
package seed

import (
	"time"

	"portside/models"
)

// Containers returns the demo container records. lastUpdated is stamped
// at call time.
func Containers() []*models.Container {
	now := time.Now().UTC()

	return []*models.Container{
		{
			ContainerNumber:    "ABCD1234567",
			Status:             models.StatusDischarged,
			Location:           "Block A-15",
			VesselName:         "MSC MAYA",
			VoyageNumber:       "MAY001E",
			ArrivalDate:        "2025-06-28",
			DischargeDate:      "2025-06-29",
			ContainerType:      "DV",
			Size:               "40HC",
			Weight:             "28500",
			AvailableForPickup: true,
			Charges:            450.00,
			Currency:           "MYR",
			EDOStatus:          models.EDOReleased,
			CustomsStatus:      models.CustomsCleared,
			LastUpdated:        now,
			Consignee:          "ABC TRADING SDN BHD",
			ShippingAgent:      "MAERSK MALAYSIA",
			PortOfLoading:      "SINGAPORE",
			SSRHistory:         []string{},
		},
		{
			ContainerNumber:    "EFGH9876543",
			Status:             "ARRIVED",
			Location:           "Block B-08",
			VesselName:         "EVERGREEN STAR",
			VoyageNumber:       "EVG002W",
			ArrivalDate:        "2025-06-29",
			ContainerType:      "RF",
			Size:               "20ST",
			Weight:             "18200",
			AvailableForPickup: false,
			Charges:            320.00,
			Currency:           "MYR",
			EDOStatus:          "PENDING",
			CustomsStatus:      "PENDING",
			LastUpdated:        now,
			Consignee:          "XYZ LOGISTICS",
			ShippingAgent:      "EVERGREEN SHIPPING",
			PortOfLoading:      "HONG KONG",
			SSRHistory:         []string{},
		},
		{
			ContainerNumber:    "MSKU7654321",
			Status:             "CUSTOMS_HOLD",
			Location:           "CIC-01",
			VesselName:         "MSC MEDITERRANEAN",
			VoyageNumber:       "MED003E",
			ArrivalDate:        "2025-06-27",
			DischargeDate:      "2025-06-28",
			ContainerType:      "DV",
			Size:               "40ST",
			Weight:             "25800",
			AvailableForPickup: false,
			Charges:            680.00,
			Currency:           "MYR",
			EDOStatus:          models.EDOReleased,
			CustomsStatus:      "HOLD",
			LastUpdated:        now,
			Consignee:          "GLOBAL IMPORTS",
			ShippingAgent:      "MSC MALAYSIA",
			PortOfLoading:      "ROTTERDAM",
			SSRHistory:         []string{},
		},
	}
}

// Vessels returns the demo vessel calls.
func Vessels() []*models.Vessel {
	return []*models.Vessel{
		{
			VesselName:   "MSC MAYA",
			IMONumber:    "9876543",
			VoyageNumber: "MAY001E",
			ETA:          time.Date(2025, 6, 28, 6, 0, 0, 0, time.UTC),
			ETD:          time.Date(2025, 7, 2, 18, 0, 0, 0, time.UTC),
			Berth:        "CT1-B3",
			Status:       "ALONGSIDE",
			Agent:        "MAERSK MALAYSIA",
		},
		{
			VesselName:   "EVERGREEN STAR",
			IMONumber:    "9765432",
			VoyageNumber: "EVG002W",
			ETA:          time.Date(2025, 6, 29, 14, 0, 0, 0, time.UTC),
			ETD:          time.Date(2025, 7, 3, 22, 0, 0, 0, time.UTC),
			Berth:        "CT2-B1",
			Status:       "DISCHARGING",
			Agent:        "EVERGREEN SHIPPING",
		},
	}
}
