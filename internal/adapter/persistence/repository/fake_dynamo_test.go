package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	putIn    *dynamodb.PutItemInput
	getIn    *dynamodb.GetItemInput
	updateIn *dynamodb.UpdateItemInput
	queryIn  *dynamodb.QueryInput

	getOut    *dynamodb.GetItemOutput
	updateOut *dynamodb.UpdateItemOutput
	queryOut  *dynamodb.QueryOutput
	err       error

	// queryPages, when set, are returned in order instead of queryOut.
	queryPages  []*dynamodb.QueryOutput
	queryStarts []map[string]types.AttributeValue
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.err != nil {
		return nil, f.err
	}
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.err != nil {
		return nil, f.err
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = in
	if f.err != nil {
		return nil, f.err
	}
	if len(f.queryPages) > 0 {
		f.queryStarts = append(f.queryStarts, in.ExclusiveStartKey)
		if len(f.queryStarts) > len(f.queryPages) {
			return nil, errors.New("unexpected query page")
		}
		return f.queryPages[len(f.queryStarts)-1], nil
	}
	if f.queryOut == nil {
		return nil, errors.New("unexpected query")
	}
	return f.queryOut, nil
}
