package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"edcstudio/internal/model"
	"edcstudio/internal/repository"
)

const transfersCollection = "transfers"

// TransferMongo is the MongoDB implementation of repository.TransferRepository.
// Consumer and provider references are stored as connector object IDs and
// resolved to full documents on read.
type TransferMongo struct {
	coll       *mongo.Collection
	connectors *ConnectorMongo
}

// NewTransferMongo creates a new TransferMongo repository.
func NewTransferMongo(db *mongo.Database) *TransferMongo {
	return &TransferMongo{
		coll:       db.Collection(transfersCollection),
		connectors: NewConnectorMongo(db),
	}
}

var _ repository.TransferRepository = (*TransferMongo)(nil)

func (r *TransferMongo) Create(ctx context.Context, t *model.Transfer) (string, error) {
	consumerOID, err := objectID(t.Consumer)
	if err != nil {
		return "", err
	}
	providerOID, err := objectID(t.Provider)
	if err != nil {
		return "", err
	}

	doc := bson.M{
		"consumer":              consumerOID,
		"provider":              providerOID,
		"asset":                 t.Asset,
		"has_policy_id":         t.HasPolicyID,
		"negotiate_contract_id": t.NegotiateContractID,
		"contract_agreement_id": t.ContractAgreementID,
		"transfer_process_id":   t.TransferProcessID,
		"transfer_flow":         t.TransferFlow,
	}
	if t.Authorization != "" {
		doc["authorization"] = t.Authorization
	}
	if t.Endpoint != "" {
		doc["endpoint"] = t.Endpoint
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindAll returns all transfer records, replacing connector object IDs with
// the referenced documents. Dangling references resolve to nil rather than
// failing the whole listing.
func (r *TransferMongo) FindAll(ctx context.Context) ([]model.TransferRecord, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.TransferRecord, 0)
	for cur.Next(ctx) {
		var doc struct {
			OID                 primitive.ObjectID `bson:"_id"`
			Consumer            primitive.ObjectID `bson:"consumer"`
			Provider            primitive.ObjectID `bson:"provider"`
			Asset               string             `bson:"asset"`
			HasPolicyID         string             `bson:"has_policy_id"`
			NegotiateContractID string             `bson:"negotiate_contract_id"`
			ContractAgreementID string             `bson:"contract_agreement_id"`
			TransferProcessID   string             `bson:"transfer_process_id"`
			TransferFlow        string             `bson:"transfer_flow"`
			Authorization       string             `bson:"authorization,omitempty"`
			Endpoint            string             `bson:"endpoint,omitempty"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}

		rec := model.TransferRecord{
			ID:                  doc.OID.Hex(),
			Asset:               doc.Asset,
			HasPolicyID:         doc.HasPolicyID,
			NegotiateContractID: doc.NegotiateContractID,
			ContractAgreementID: doc.ContractAgreementID,
			TransferProcessID:   doc.TransferProcessID,
			TransferFlow:        doc.TransferFlow,
			Authorization:       doc.Authorization,
			Endpoint:            doc.Endpoint,
		}
		if c, err := r.connectors.FindByID(ctx, doc.Consumer.Hex()); err == nil {
			rec.Consumer = c
		}
		if p, err := r.connectors.FindByID(ctx, doc.Provider.Hex()); err == nil {
			rec.Provider = p
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}
