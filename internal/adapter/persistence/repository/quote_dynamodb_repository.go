package repository

import (
	"context"
	"log"
	"time"

	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type serviceItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Type        string  `dynamodbav:"type"`
	LaborHours  float64 `dynamodbav:"labor_hours"`
	CostPerHour float64 `dynamodbav:"cost_per_hour"`
}

type lineItemItem struct {
	ID       string  `dynamodbav:"id"`
	Name     string  `dynamodbav:"name"`
	Quantity float64 `dynamodbav:"quantity"`
	UnitCost float64 `dynamodbav:"unit_cost"`
}

type damagedPartItem struct {
	PartID           string         `dynamodbav:"part_id"`
	PartName         string         `dynamodbav:"part_name"`
	Services         []serviceItem  `dynamodbav:"services"`
	ReplacementParts []lineItemItem `dynamodbav:"replacement_parts"`
	Materials        []lineItemItem `dynamodbav:"materials"`
}

type timelineEventItem struct {
	ID          string `dynamodbav:"id"`
	Date        string `dynamodbav:"date"`
	Status      string `dynamodbav:"status"`
	Description string `dynamodbav:"description"`
	PhotoURL    string `dynamodbav:"photo_url,omitempty"`
}

type chatMessageItem struct {
	ID        string `dynamodbav:"id"`
	Sender    string `dynamodbav:"sender"`
	Text      string `dynamodbav:"text"`
	Timestamp string `dynamodbav:"timestamp"`
}

type customerItem struct {
	Name  string `dynamodbav:"name"`
	Phone string `dynamodbav:"phone"`
	Email string `dynamodbav:"email"`
}

type vehicleItem struct {
	Make  string `dynamodbav:"make"`
	Model string `dynamodbav:"model"`
	Year  string `dynamodbav:"year"`
	Color string `dynamodbav:"color"`
	Plate string `dynamodbav:"plate"`
}

type photoItem struct {
	Name string `dynamodbav:"name"`
	URL  string `dynamodbav:"url"`
}

type quoteItem struct {
	ID                  string                     `dynamodbav:"id"`
	CreatedAt           string                     `dynamodbav:"created_at"`
	CreatedByID         string                     `dynamodbav:"created_by_id,omitempty"`
	CreatedByName       string                     `dynamodbav:"created_by_name,omitempty"`
	Status              string                     `dynamodbav:"status"`
	Customer            customerItem               `dynamodbav:"customer"`
	Vehicle             vehicleItem                `dynamodbav:"vehicle"`
	Photos              []photoItem                `dynamodbav:"photos"`
	DamagedParts        map[string]damagedPartItem `dynamodbav:"damaged_parts"`
	PaymentMethod       string                     `dynamodbav:"payment_method,omitempty"`
	ApprovedAt          string                     `dynamodbav:"approved_at,omitempty"`
	OSGeneratedAt       string                     `dynamodbav:"os_generated_at,omitempty"`
	CustomerPortalToken string                     `dynamodbav:"customer_portal_token,omitempty"`
	Signature           string                     `dynamodbav:"signature,omitempty"`
	SignedAt            string                     `dynamodbav:"signed_at,omitempty"`
	TermsAndConditions  string                     `dynamodbav:"terms_and_conditions,omitempty"`
	Timeline            []timelineEventItem        `dynamodbav:"timeline"`
	Chat                []chatMessageItem          `dynamodbav:"chat"`
}

// QuoteDynamoRepository persists the quote collection in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The repository contract is collection-level (LoadAll/SaveAll). SaveAll
// puts every quote and deletes rows whose id disappeared from the set, so
// the table always mirrors the in-memory collection.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) LoadAll(ctx context.Context) ([]entities.Quote, error) {
	quotes := []entities.Quote{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) SaveAll(ctx context.Context, quotes []entities.Quote) error {
	existing, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	keep := make(map[string]bool, len(quotes))
	for _, q := range quotes {
		keep[q.ID] = true
		av, err := attributevalue.MarshalMap(toQuoteItem(q))
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return err
		}
	}

	for _, q := range existing {
		if keep[q.ID] {
			continue
		}
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: q.ID},
			},
		}); err != nil {
			log.Printf("[quote][repository] delete %s failed: %v", q.ID, err)
			return err
		}
	}
	return nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                  q.ID,
		CreatedAt:           q.CreatedAt.UTC().Format(time.RFC3339Nano),
		CreatedByID:         q.CreatedByID,
		CreatedByName:       q.CreatedByName,
		Status:              string(q.Status),
		Customer:            customerItem(q.Customer),
		Vehicle:             vehicleItem(q.Vehicle),
		Photos:              []photoItem{},
		DamagedParts:        map[string]damagedPartItem{},
		PaymentMethod:       string(q.PaymentMethod),
		ApprovedAt:          optionalTimeToString(q.ApprovedAt),
		OSGeneratedAt:       optionalTimeToString(q.OSGeneratedAt),
		CustomerPortalToken: q.CustomerPortalToken,
		Signature:           q.Signature,
		SignedAt:            optionalTimeToString(q.SignedAt),
		TermsAndConditions:  q.TermsAndConditions,
		Timeline:            []timelineEventItem{},
		Chat:                []chatMessageItem{},
	}
	for _, p := range q.Photos {
		it.Photos = append(it.Photos, photoItem(p))
	}
	for key, dp := range q.DamagedParts {
		dpi := damagedPartItem{
			PartID:           dp.PartID,
			PartName:         dp.PartName,
			Services:         []serviceItem{},
			ReplacementParts: []lineItemItem{},
			Materials:        []lineItemItem{},
		}
		for _, s := range dp.Services {
			dpi.Services = append(dpi.Services, serviceItem{
				ID: s.ID, Name: s.Name, Type: string(s.Type),
				LaborHours: s.LaborHours, CostPerHour: s.CostPerHour,
			})
		}
		for _, li := range dp.ReplacementParts {
			dpi.ReplacementParts = append(dpi.ReplacementParts, lineItemItem(li))
		}
		for _, li := range dp.Materials {
			dpi.Materials = append(dpi.Materials, lineItemItem(li))
		}
		it.DamagedParts[key] = dpi
	}
	for _, ev := range q.Timeline {
		it.Timeline = append(it.Timeline, timelineEventItem{
			ID:          ev.ID,
			Date:        ev.Date.UTC().Format(time.RFC3339Nano),
			Status:      ev.Status,
			Description: ev.Description,
			PhotoURL:    ev.PhotoURL,
		})
	}
	for _, msg := range q.Chat {
		it.Chat = append(it.Chat, chatMessageItem{
			ID:        msg.ID,
			Sender:    string(msg.Sender),
			Text:      msg.Text,
			Timestamp: msg.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	q := entities.Quote{
		ID:                  it.ID,
		CreatedAt:           createdAt,
		CreatedByID:         it.CreatedByID,
		CreatedByName:       it.CreatedByName,
		Status:              entities.QuoteStatus(it.Status),
		Customer:            entities.Customer(it.Customer),
		Vehicle:             entities.Vehicle(it.Vehicle),
		Photos:              []entities.Photo{},
		DamagedParts:        map[string]entities.DamagedPart{},
		PaymentMethod:       entities.PaymentMethod(it.PaymentMethod),
		ApprovedAt:          optionalTimeFromString(it.ApprovedAt),
		OSGeneratedAt:       optionalTimeFromString(it.OSGeneratedAt),
		CustomerPortalToken: it.CustomerPortalToken,
		Signature:           it.Signature,
		SignedAt:            optionalTimeFromString(it.SignedAt),
		TermsAndConditions:  it.TermsAndConditions,
	}
	for _, p := range it.Photos {
		q.Photos = append(q.Photos, entities.Photo(p))
	}
	for key, dpi := range it.DamagedParts {
		dp := entities.DamagedPart{
			PartID:           dpi.PartID,
			PartName:         dpi.PartName,
			Services:         []entities.Service{},
			ReplacementParts: []entities.LineItem{},
			Materials:        []entities.LineItem{},
		}
		for _, s := range dpi.Services {
			dp.Services = append(dp.Services, entities.Service{
				ID: s.ID, Name: s.Name, Type: entities.ServiceType(s.Type),
				LaborHours: s.LaborHours, CostPerHour: s.CostPerHour,
			})
		}
		for _, li := range dpi.ReplacementParts {
			dp.ReplacementParts = append(dp.ReplacementParts, entities.LineItem(li))
		}
		for _, li := range dpi.Materials {
			dp.Materials = append(dp.Materials, entities.LineItem(li))
		}
		q.DamagedParts[key] = dp
	}
	if len(it.Timeline) > 0 {
		q.Timeline = []entities.TimelineEvent{}
		for _, ev := range it.Timeline {
			date, _ := time.Parse(time.RFC3339Nano, ev.Date)
			q.Timeline = append(q.Timeline, entities.TimelineEvent{
				ID:          ev.ID,
				Date:        date,
				Status:      ev.Status,
				Description: ev.Description,
				PhotoURL:    ev.PhotoURL,
			})
		}
	}
	if it.Chat != nil {
		q.Chat = []entities.ChatMessage{}
		for _, msg := range it.Chat {
			ts, _ := time.Parse(time.RFC3339Nano, msg.Timestamp)
			q.Chat = append(q.Chat, entities.ChatMessage{
				ID:        msg.ID,
				Sender:    entities.ChatSender(msg.Sender),
				Text:      msg.Text,
				Timestamp: ts,
			})
		}
	}
	return q
}

func optionalTimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func optionalTimeFromString(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
